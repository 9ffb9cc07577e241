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

// Interface provides the API to the wrapped library itself: lifecycle,
// system-wide queries and handle acquisition.
type Interface interface {
	// Init initializes the library. It must be called once, before any
	// other call, and balanced by a call to Shutdown.
	Init() Return
	// InitWithFlags initializes the library with the specified
	// combination of INIT_FLAG_* values.
	InitWithFlags(flags uint32) Return
	// Shutdown shuts the library down and releases the resources it
	// holds. Handles obtained before Shutdown must not be used afterwards.
	Shutdown() Return
	// Extensions returns the extension functions implemented on top of
	// the wrapped API.
	Extensions() ExtendedInterface
	// GetLibrary returns a representation of the underlying shared
	// library.
	GetLibrary() Library
	// ErrorString returns the message associated with a status code.
	ErrorString(r Return) string
	// SystemGetDriverVersion returns the version of the installed driver.
	SystemGetDriverVersion() (string, Return)
	// SystemGetNVMLVersion returns the version of the wrapped library.
	SystemGetNVMLVersion() (string, Return)
	// SystemGetCudaDriverVersion returns the CUDA version of the
	// installed driver.
	SystemGetCudaDriverVersion() (int, Return)
	// SystemGetCudaDriverVersion_v2 is like SystemGetCudaDriverVersion
	// but does not require that a CUDA context exist.
	SystemGetCudaDriverVersion_v2() (int, Return)
	// SystemGetProcessName returns the name of the process with the
	// specified PID.
	SystemGetProcessName(pid int) (string, Return)
	// DeviceGetCount returns the number of devices in the system.
	DeviceGetCount() (int, Return)
	// DeviceGetHandleByIndex returns a handle for the device with the
	// specified index.
	DeviceGetHandleByIndex(index int) (Device, Return)
	// DeviceGetHandleBySerial returns a handle for the device with the
	// specified board serial number.
	DeviceGetHandleBySerial(serial string) (Device, Return)
	// DeviceGetHandleByUUID returns a handle for the device with the
	// specified UUID.
	DeviceGetHandleByUUID(uuid string) (Device, Return)
	// DeviceGetHandleByPciBusId returns a handle for the device at the
	// specified PCI bus id.
	DeviceGetHandleByPciBusId(pciBusId string) (Device, Return)
	// EventSetCreate creates an empty event set.
	EventSetCreate() (EventSet, Return)
}

// ExtendedInterface defines a set of extensions to the wrapped API.
type ExtendedInterface interface {
	// LookupSymbol checks whether the specified symbol exists in the
	// loaded library.
	LookupSymbol(name string) error
}

// Library defines a set of functions defined on the underlying dynamic
// library.
type Library interface {
	Lookup(name string) error
}

// Device is the interface for the device-scoped API. A Device is obtained
// from the library and remains valid until Shutdown.
type Device interface {
	GetName() (string, Return)
	GetBrand() (BrandType, Return)
	GetIndex() (int, Return)
	GetSerial() (string, Return)
	GetUUID() (string, Return)
	GetMinorNumber() (int, Return)
	GetBoardId() (uint32, Return)
	OnSameBoard(device2 Device) (bool, Return)
	GetVbiosVersion() (string, Return)
	GetInforomVersion(object InforomObject) (string, Return)
	GetCudaComputeCapability() (int, int, Return)
	GetMemoryInfo() (Memory, Return)
	GetBAR1MemoryInfo() (BAR1Memory, Return)
	GetUtilizationRates() (Utilization, Return)
	GetEncoderUtilization() (uint32, uint32, Return)
	GetDecoderUtilization() (uint32, uint32, Return)
	GetEncoderSessions() ([]EncoderSessionInfo, Return)
	GetTemperature(sensorType TemperatureSensors) (uint32, Return)
	GetTemperatureThreshold(thresholdType TemperatureThresholds) (uint32, Return)
	GetFanSpeed() (uint32, Return)
	GetPowerUsage() (uint32, Return)
	GetPowerManagementLimit() (uint32, Return)
	GetEnforcedPowerLimit() (uint32, Return)
	GetPerformanceState() (Pstates, Return)
	GetClockInfo(clockType ClockType) (uint32, Return)
	GetMaxClockInfo(clockType ClockType) (uint32, Return)
	GetPersistenceMode() (EnableState, Return)
	SetPersistenceMode(mode EnableState) Return
	GetComputeMode() (ComputeMode, Return)
	SetComputeMode(mode ComputeMode) Return
	GetEccMode() (EnableState, EnableState, Return)
	GetTotalEccErrors(errorType MemoryErrorType, counterType EccCounterType) (uint64, Return)
	GetDetailedEccErrors(errorType MemoryErrorType, counterType EccCounterType) (EccErrorCounts, Return)
	GetPciInfo() (PciInfo, Return)
	GetComputeRunningProcesses() ([]ProcessInfo, Return)
	GetGraphicsRunningProcesses() ([]ProcessInfo, Return)
	GetProcessUtilization(lastSeenTimeStamp uint64) ([]ProcessUtilizationSample, Return)
	GetSamples(samplingType SamplingType, lastSeenTimeStamp uint64) (ValueType, []Sample, Return)
	GetViolationStatus(perfPolicyType PerfPolicyType) (ViolationTime, Return)
	GetAccountingMode() (EnableState, Return)
	SetAccountingMode(mode EnableState) Return
	GetAccountingStats(pid uint32) (AccountingStats, Return)
	GetAccountingPids() ([]int, Return)
	GetAccountingBufferSize() (int, Return)
	ClearAccountingPids() Return
	GetBridgeChipInfo() (BridgeChipHierarchy, Return)
	GetTopologyCommonAncestor(device2 Device) (GpuTopologyLevel, Return)
	GetTopologyNearestGpus(level GpuTopologyLevel) ([]Device, Return)
	GetNvLinkState(link int) (EnableState, Return)
	GetNvLinkVersion(link int) (uint32, Return)
	GetNvLinkCapability(link int, capability NvLinkCapability) (uint32, Return)
	GetNvLinkRemotePciInfo(link int) (PciInfo, Return)
	GetNvLinkErrorCounter(link int, counter NvLinkErrorCounter) (uint64, Return)
	ResetNvLinkErrorCounters(link int) Return
	SetNvLinkUtilizationControl(link int, counter int, control *NvLinkUtilizationControl, reset bool) Return
	GetNvLinkUtilizationControl(link int, counter int) (NvLinkUtilizationControl, Return)
	GetNvLinkUtilizationCounter(link int, counter int) (uint64, uint64, Return)
	FreezeNvLinkUtilizationCounter(link int, counter int, freeze EnableState) Return
	ResetNvLinkUtilizationCounter(link int, counter int) Return
	RegisterEvents(eventTypes uint64, set EventSet) Return
	GetSupportedEventTypes() (uint64, Return)
}

// EventSet is the interface for event set handles.
type EventSet interface {
	// Wait blocks until an event registered with the set occurs or the
	// timeout (in milliseconds) expires.
	Wait(timeoutms uint32) (EventData, Return)
	// Free releases the event set.
	Free() Return
}

var _ Device = nvmlDevice{}
var _ EventSet = nvmlEventSet{}
