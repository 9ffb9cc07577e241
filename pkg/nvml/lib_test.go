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
	"testing"

	"github.com/stretchr/testify/require"
)

// dynamicLibraryMock allows load and symbol resolution to be exercised
// without a driver installation.
type dynamicLibraryMock struct {
	OpenFunc   func() error
	CloseFunc  func() error
	LookupFunc func(string) error
}

func (m *dynamicLibraryMock) Open() error {
	return m.OpenFunc()
}

func (m *dynamicLibraryMock) Close() error {
	return m.CloseFunc()
}

func (m *dynamicLibraryMock) Lookup(symbol string) error {
	return m.LookupFunc(symbol)
}

var _ dynamicLibrary = (*dynamicLibraryMock)(nil)

func newTestLibrary(t *testing.T, mock dynamicLibrary) *library {
	t.Helper()
	original := newDynamicLibrary
	newDynamicLibrary = func(path string, flags int) dynamicLibrary {
		return mock
	}
	t.Cleanup(func() {
		newDynamicLibrary = original
	})
	return &library{
		path:  defaultNvmlLibraryName,
		flags: defaultNvmlLibraryLoadFlags,
	}
}

func TestLoadAndClose(t *testing.T) {
	mock := &dynamicLibraryMock{
		OpenFunc: func() error {
			return nil
		},
		CloseFunc: func() error {
			return nil
		},
		LookupFunc: func(symbol string) error {
			return errors.New("symbol not found")
		},
	}

	l := newTestLibrary(t, mock)
	require.False(t, l.isLoaded())

	require.NoError(t, l.load())
	require.True(t, l.isLoaded())

	// A second load is a no-op.
	require.NoError(t, l.load())
	require.True(t, l.isLoaded())

	require.NoError(t, l.close())
	require.False(t, l.isLoaded())

	// A second close is a no-op.
	require.NoError(t, l.close())
	require.False(t, l.isLoaded())
}

func TestLoadFailurePropagatesOpenError(t *testing.T) {
	mock := &dynamicLibraryMock{
		OpenFunc: func() error {
			return errors.New("open failed")
		},
	}

	l := newTestLibrary(t, mock)
	require.Error(t, l.load())
	require.False(t, l.isLoaded())
}

func TestLookupBeforeLoad(t *testing.T) {
	l := &library{
		path:  defaultNvmlLibraryName,
		flags: defaultNvmlLibraryLoadFlags,
	}
	require.ErrorIs(t, l.Lookup("nvmlInit"), errLibraryNotLoaded)
	require.ErrorIs(t, l.Extensions().LookupSymbol("nvmlInit"), errLibraryNotLoaded)
}

func TestCallsBeforeInitReturnUninitialized(t *testing.T) {
	// The global library has not been initialized. Every entry point has
	// to report ERROR_UNINITIALIZED instead of crossing the foreign
	// function boundary.
	require.False(t, libnvml.isLoaded())

	require.Equal(t, ERROR_UNINITIALIZED, Shutdown())

	_, ret := SystemGetDriverVersion()
	require.Equal(t, ERROR_UNINITIALIZED, ret)

	_, ret = SystemGetNVMLVersion()
	require.Equal(t, ERROR_UNINITIALIZED, ret)

	_, ret = SystemGetCudaDriverVersion()
	require.Equal(t, ERROR_UNINITIALIZED, ret)

	_, ret = SystemGetProcessName(1)
	require.Equal(t, ERROR_UNINITIALIZED, ret)

	_, ret = DeviceGetCount()
	require.Equal(t, ERROR_UNINITIALIZED, ret)

	_, ret = DeviceGetHandleByIndex(0)
	require.Equal(t, ERROR_UNINITIALIZED, ret)

	_, ret = DeviceGetHandleByUUID("GPU-00000000-0000-0000-0000-000000000000")
	require.Equal(t, ERROR_UNINITIALIZED, ret)

	_, ret = EventSetCreate()
	require.Equal(t, ERROR_UNINITIALIZED, ret)
}

func TestDeviceCallsBeforeInitReturnUninitialized(t *testing.T) {
	require.False(t, libnvml.isLoaded())
	var device nvmlDevice

	_, ret := device.GetName()
	require.Equal(t, ERROR_UNINITIALIZED, ret)

	_, ret = device.GetUUID()
	require.Equal(t, ERROR_UNINITIALIZED, ret)

	_, ret = device.GetMemoryInfo()
	require.Equal(t, ERROR_UNINITIALIZED, ret)

	_, ret = device.GetComputeRunningProcesses()
	require.Equal(t, ERROR_UNINITIALIZED, ret)

	_, ret = device.GetNvLinkState(0)
	require.Equal(t, ERROR_UNINITIALIZED, ret)

	require.Equal(t, ERROR_UNINITIALIZED, device.ClearAccountingPids())
}

func TestSetLibraryOptions(t *testing.T) {
	defer func() {
		libnvml.path = defaultNvmlLibraryName
		libnvml.flags = defaultNvmlLibraryLoadFlags
	}()

	require.NoError(t, SetLibraryOptions(WithLibraryPath("libnvidia-ml.so.550.54.15")))
	require.Equal(t, "libnvidia-ml.so.550.54.15", libnvml.path)

	// An empty path falls back to the default.
	require.NoError(t, SetLibraryOptions(WithLibraryPath("")))
	require.Equal(t, defaultNvmlLibraryName, libnvml.path)
}

func TestNewReturnsSingleton(t *testing.T) {
	i1 := New()
	i2 := New()
	require.Equal(t, i1, i2)
}

func TestNvmlDeviceHandle(t *testing.T) {
	var device nvmlDevice

	require.Equal(t, device, nvmlDeviceHandle(device))
	require.Equal(t, device, nvmlDeviceHandle(&device))

	require.Panics(t, func() {
		nvmlDeviceHandle(nil)
	})
}
