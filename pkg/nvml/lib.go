/*
 * Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package nvml

import (
	"errors"
	"fmt"
	"sync"

	"github.com/NVIDIA/go-nvml-wrapper/pkg/dl"
)

const (
	defaultNvmlLibraryName      = "libnvidia-ml.so.1"
	defaultNvmlLibraryLoadFlags = dl.RTLD_LAZY | dl.RTLD_GLOBAL
)

var errLibraryNotLoaded = errors.New("library not loaded")
var errLibraryAlreadyLoaded = errors.New("library already loaded")

// dynamicLibrary is an interface for abstracting the underlying library.
// This also allows for mocking and testing.
type dynamicLibrary interface {
	Open() error
	Close() error
	Lookup(string) error
}

// library represents an nvml library.
// This includes a reference to the underlying DynamicLibrary
type library struct {
	sync.Mutex
	path  string
	flags int
	dl    dynamicLibrary
}

// libnvml is a global instance of the nvml library.
var libnvml = library{
	path:  defaultNvmlLibraryName,
	flags: defaultNvmlLibraryLoadFlags,
}

var _ Interface = (*library)(nil)

// New returns a reference to the nvml library with the specified options
// applied.
func New(opts ...LibraryOption) Interface {
	for _, opt := range opts {
		opt(&libnvml)
	}
	return &libnvml
}

// GetLibrary returns a the library as a Library interface.
func (l *library) GetLibrary() Library {
	return l
}

// GetLibrary returns a representation of the underlying library that implements the Library interface.
func GetLibrary() Library {
	return libnvml.GetLibrary()
}

// Extensions returns the set of extension functions implemented on top of
// the wrapped API.
func (l *library) Extensions() ExtendedInterface {
	return l
}

// LookupSymbol checks whether the specified library symbol exists in the library.
// Note that this requires that the library be loaded.
func (l *library) LookupSymbol(name string) error {
	return l.Lookup(name)
}

// Lookup checks whether the specified library symbol exists in the library.
// Note that this requires that the library be loaded.
func (l *library) Lookup(name string) error {
	if l == nil || l.dl == nil {
		return fmt.Errorf("error looking up %s: %w", name, errLibraryNotLoaded)
	}
	return l.dl.Lookup(name)
}

// newDynamicLibrary is a function variable that can be overridden for testing.
var newDynamicLibrary = func(path string, flags int) dynamicLibrary {
	return dl.New(path, flags)
}

// load initializes the library and updates the versioned symbols.
// Multiple calls to an already loaded library will return without error.
func (l *library) load() error {
	l.Lock()
	defer l.Unlock()
	if l.dl != nil {
		return nil
	}

	dl := newDynamicLibrary(l.path, l.flags)
	err := dl.Open()
	if err != nil {
		return fmt.Errorf("error opening %s: %w", l.path, err)
	}

	l.dl = dl
	l.updateVersionedSymbols()

	return nil
}

// close the underlying library and ensure that the global pointer to the
// library is set to nil to ensure that subsequent calls to open will reinitialize it.
// Multiple calls to an already closed nvml library will return without error.
func (l *library) close() error {
	l.Lock()
	defer l.Unlock()

	if l.dl == nil {
		return nil
	}

	err := l.dl.Close()
	if err != nil {
		return fmt.Errorf("error closing %s: %w", l.path, err)
	}

	l.dl = nil

	return nil
}

// isLoaded reports whether the underlying library has been loaded. Calls
// made while the library is not loaded return ERROR_UNINITIALIZED instead
// of crossing the foreign function boundary.
func (l *library) isLoaded() bool {
	l.Lock()
	defer l.Unlock()
	return l.dl != nil
}

// nvmlDeviceHandle extracts the raw device handle from any Device
// implementation backed by this package.
func nvmlDeviceHandle(d Device) nvmlDevice {
	switch v := d.(type) {
	case nvmlDevice:
		return v
	case *nvmlDevice:
		return *v
	default:
		panic(fmt.Errorf("invalid device type: %T", d))
	}
}

// nvmlEventSetHandle extracts the raw event set handle from any EventSet
// implementation backed by this package.
func nvmlEventSetHandle(e EventSet) nvmlEventSet {
	switch v := e.(type) {
	case nvmlEventSet:
		return v
	case *nvmlEventSet:
		return *v
	default:
		panic(fmt.Errorf("invalid event set type: %T", e))
	}
}

// Default all versioned APIs to v1 (to infer the types)
var nvmlInit = nvmlInit_v1
var nvmlDeviceGetCount = nvmlDeviceGetCount_v1
var nvmlDeviceGetHandleByIndex = nvmlDeviceGetHandleByIndex_v1
var nvmlDeviceGetHandleByPciBusId = nvmlDeviceGetHandleByPciBusId_v1
var nvmlDeviceGetPciInfo = nvmlDeviceGetPciInfo_v1
var nvmlDeviceGetNvLinkRemotePciInfo = nvmlDeviceGetNvLinkRemotePciInfo_v1
var nvmlSystemGetCudaDriverVersion = nvmlSystemGetCudaDriverVersion_v1
var nvmlEventSetWait = nvmlEventSetWait_v1
var deviceGetComputeRunningProcesses = deviceGetComputeRunningProcesses_v1
var deviceGetGraphicsRunningProcesses = deviceGetGraphicsRunningProcesses_v1

// updateVersionedSymbols checks for versioned symbols in the loaded dynamic library.
// If newer versioned symbols exist, these replace the default `v1` symbols initialized above.
// When new versioned symbols are added, these would have to be initialized above and have
// corresponding checks and subsequent assignments added below.
func (l *library) updateVersionedSymbols() {
	err := l.dl.Lookup("nvmlInit_v2")
	if err == nil {
		nvmlInit = nvmlInit_v2
	}
	err = l.dl.Lookup("nvmlDeviceGetCount_v2")
	if err == nil {
		nvmlDeviceGetCount = nvmlDeviceGetCount_v2
	}
	err = l.dl.Lookup("nvmlDeviceGetHandleByIndex_v2")
	if err == nil {
		nvmlDeviceGetHandleByIndex = nvmlDeviceGetHandleByIndex_v2
	}
	err = l.dl.Lookup("nvmlDeviceGetHandleByPciBusId_v2")
	if err == nil {
		nvmlDeviceGetHandleByPciBusId = nvmlDeviceGetHandleByPciBusId_v2
	}
	err = l.dl.Lookup("nvmlDeviceGetPciInfo_v2")
	if err == nil {
		nvmlDeviceGetPciInfo = nvmlDeviceGetPciInfo_v2
	}
	err = l.dl.Lookup("nvmlDeviceGetPciInfo_v3")
	if err == nil {
		nvmlDeviceGetPciInfo = nvmlDeviceGetPciInfo_v3
	}
	err = l.dl.Lookup("nvmlDeviceGetNvLinkRemotePciInfo_v2")
	if err == nil {
		nvmlDeviceGetNvLinkRemotePciInfo = nvmlDeviceGetNvLinkRemotePciInfo_v2
	}
	err = l.dl.Lookup("nvmlSystemGetCudaDriverVersion_v2")
	if err == nil {
		nvmlSystemGetCudaDriverVersion = nvmlSystemGetCudaDriverVersion_v2
	}
	err = l.dl.Lookup("nvmlEventSetWait_v2")
	if err == nil {
		nvmlEventSetWait = nvmlEventSetWait_v2
	}
	err = l.dl.Lookup("nvmlDeviceGetComputeRunningProcesses_v2")
	if err == nil {
		deviceGetComputeRunningProcesses = deviceGetComputeRunningProcesses_v2
	}
	err = l.dl.Lookup("nvmlDeviceGetGraphicsRunningProcesses_v2")
	if err == nil {
		deviceGetGraphicsRunningProcesses = deviceGetGraphicsRunningProcesses_v2
	}
}

// LibraryOption represents a functional option to configure the underlying NVML library
type LibraryOption func(*library)

// WithLibraryPath provides an option to set the library name to be used by the NVML library.
func WithLibraryPath(path string) LibraryOption {
	return func(l *library) {
		l.path = path
	}
}

// SetLibraryOptions applies the specified options to the NVML library.
// If this is called when a library is already loaded, an error is raised.
func SetLibraryOptions(opts ...LibraryOption) error {
	libnvml.Lock()
	defer libnvml.Unlock()
	if libnvml.dl != nil {
		return errLibraryAlreadyLoaded
	}

	for _, opt := range opts {
		opt(&libnvml)
	}

	if libnvml.path == "" {
		libnvml.path = defaultNvmlLibraryName
	}
	if libnvml.flags == 0 {
		libnvml.flags = defaultNvmlLibraryLoadFlags
	}

	return nil
}
