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

/*
#cgo linux LDFLAGS: -Wl,--export-dynamic -Wl,--unresolved-symbols=ignore-in-object-files
#cgo darwin LDFLAGS: -Wl,-undefined,dynamic_lookup
#include <stdlib.h>
#include "nvml.h"
*/
import "C"

import (
	"unsafe"
)

// nvmlDevice wraps the raw handle to a device. The handle is only valid
// between a successful Init and the corresponding Shutdown. A struct is
// required here: nvmlDevice_t is a pointer typedef, and Go does not allow
// methods on a type whose underlying type is a pointer.
type nvmlDevice struct {
	handle C.nvmlDevice_t
}

// nvmlEventSet wraps the raw handle to an event set.
type nvmlEventSet struct {
	handle C.nvmlEventSet_t
}

// nvmlEventData mirrors nvmlEventData_t. The struct carries the v2 layout:
// nvmlEventSetWait_v2 writes the two instance id fields, the v1 symbol
// leaves them untouched. The public EventData type is produced from it by
// wrapping the raw device handle.
type nvmlEventData struct {
	Device            nvmlDevice
	EventType         uint64
	EventData         uint64
	GpuInstanceId     uint32
	ComputeInstanceId uint32
}

func nvmlInit_v1() Return {
	return Return(C.nvmlInit())
}

func nvmlInit_v2() Return {
	return Return(C.nvmlInit_v2())
}

func nvmlInitWithFlags(flags uint32) Return {
	return Return(C.nvmlInitWithFlags(C.uint(flags)))
}

func nvmlShutdown() Return {
	return Return(C.nvmlShutdown())
}

func nvmlSystemGetDriverVersion(version *byte, length uint32) Return {
	return Return(C.nvmlSystemGetDriverVersion((*C.char)(unsafe.Pointer(version)), C.uint(length)))
}

func nvmlSystemGetNVMLVersion(version *byte, length uint32) Return {
	return Return(C.nvmlSystemGetNVMLVersion((*C.char)(unsafe.Pointer(version)), C.uint(length)))
}

func nvmlSystemGetCudaDriverVersion_v1(cudaDriverVersion *int32) Return {
	return Return(C.nvmlSystemGetCudaDriverVersion((*C.int)(unsafe.Pointer(cudaDriverVersion))))
}

func nvmlSystemGetCudaDriverVersion_v2(cudaDriverVersion *int32) Return {
	return Return(C.nvmlSystemGetCudaDriverVersion_v2((*C.int)(unsafe.Pointer(cudaDriverVersion))))
}

func nvmlSystemGetProcessName(pid uint32, name *byte, length uint32) Return {
	return Return(C.nvmlSystemGetProcessName(C.uint(pid), (*C.char)(unsafe.Pointer(name)), C.uint(length)))
}

func nvmlDeviceGetCount_v1(deviceCount *uint32) Return {
	return Return(C.nvmlDeviceGetCount((*C.uint)(unsafe.Pointer(deviceCount))))
}

func nvmlDeviceGetCount_v2(deviceCount *uint32) Return {
	return Return(C.nvmlDeviceGetCount_v2((*C.uint)(unsafe.Pointer(deviceCount))))
}

func nvmlDeviceGetHandleByIndex_v1(index uint32, device *nvmlDevice) Return {
	return Return(C.nvmlDeviceGetHandleByIndex(C.uint(index), &device.handle))
}

func nvmlDeviceGetHandleByIndex_v2(index uint32, device *nvmlDevice) Return {
	return Return(C.nvmlDeviceGetHandleByIndex_v2(C.uint(index), &device.handle))
}

func nvmlDeviceGetHandleBySerial(serial string, device *nvmlDevice) Return {
	cserial := C.CString(serial)
	defer C.free(unsafe.Pointer(cserial))
	return Return(C.nvmlDeviceGetHandleBySerial(cserial, &device.handle))
}

func nvmlDeviceGetHandleByUUID(uuid string, device *nvmlDevice) Return {
	cuuid := C.CString(uuid)
	defer C.free(unsafe.Pointer(cuuid))
	return Return(C.nvmlDeviceGetHandleByUUID(cuuid, &device.handle))
}

func nvmlDeviceGetHandleByPciBusId_v1(pciBusId string, device *nvmlDevice) Return {
	cpciBusId := C.CString(pciBusId)
	defer C.free(unsafe.Pointer(cpciBusId))
	return Return(C.nvmlDeviceGetHandleByPciBusId(cpciBusId, &device.handle))
}

func nvmlDeviceGetHandleByPciBusId_v2(pciBusId string, device *nvmlDevice) Return {
	cpciBusId := C.CString(pciBusId)
	defer C.free(unsafe.Pointer(cpciBusId))
	return Return(C.nvmlDeviceGetHandleByPciBusId_v2(cpciBusId, &device.handle))
}

func nvmlDeviceGetName(device nvmlDevice, name *byte, length uint32) Return {
	return Return(C.nvmlDeviceGetName(device.handle, (*C.char)(unsafe.Pointer(name)), C.uint(length)))
}

func nvmlDeviceGetBrand(device nvmlDevice, brandType *BrandType) Return {
	return Return(C.nvmlDeviceGetBrand(device.handle, (*C.nvmlBrandType_t)(unsafe.Pointer(brandType))))
}

func nvmlDeviceGetIndex(device nvmlDevice, index *uint32) Return {
	return Return(C.nvmlDeviceGetIndex(device.handle, (*C.uint)(unsafe.Pointer(index))))
}

func nvmlDeviceGetSerial(device nvmlDevice, serial *byte, length uint32) Return {
	return Return(C.nvmlDeviceGetSerial(device.handle, (*C.char)(unsafe.Pointer(serial)), C.uint(length)))
}

func nvmlDeviceGetUUID(device nvmlDevice, uuid *byte, length uint32) Return {
	return Return(C.nvmlDeviceGetUUID(device.handle, (*C.char)(unsafe.Pointer(uuid)), C.uint(length)))
}

func nvmlDeviceGetMinorNumber(device nvmlDevice, minorNumber *uint32) Return {
	return Return(C.nvmlDeviceGetMinorNumber(device.handle, (*C.uint)(unsafe.Pointer(minorNumber))))
}

func nvmlDeviceGetBoardId(device nvmlDevice, boardId *uint32) Return {
	return Return(C.nvmlDeviceGetBoardId(device.handle, (*C.uint)(unsafe.Pointer(boardId))))
}

func nvmlDeviceOnSameBoard(device1 nvmlDevice, device2 nvmlDevice, onSameBoard *int32) Return {
	return Return(C.nvmlDeviceOnSameBoard(device1.handle, device2.handle, (*C.int)(unsafe.Pointer(onSameBoard))))
}

func nvmlDeviceGetVbiosVersion(device nvmlDevice, version *byte, length uint32) Return {
	return Return(C.nvmlDeviceGetVbiosVersion(device.handle, (*C.char)(unsafe.Pointer(version)), C.uint(length)))
}

func nvmlDeviceGetInforomVersion(device nvmlDevice, object InforomObject, version *byte, length uint32) Return {
	return Return(C.nvmlDeviceGetInforomVersion(device.handle, C.nvmlInforomObject_t(object), (*C.char)(unsafe.Pointer(version)), C.uint(length)))
}

func nvmlDeviceGetCudaComputeCapability(device nvmlDevice, major *int32, minor *int32) Return {
	return Return(C.nvmlDeviceGetCudaComputeCapability(device.handle, (*C.int)(unsafe.Pointer(major)), (*C.int)(unsafe.Pointer(minor))))
}

func nvmlDeviceGetMemoryInfo(device nvmlDevice, memory *Memory) Return {
	return Return(C.nvmlDeviceGetMemoryInfo(device.handle, (*C.nvmlMemory_t)(unsafe.Pointer(memory))))
}

func nvmlDeviceGetBAR1MemoryInfo(device nvmlDevice, bar1Memory *BAR1Memory) Return {
	return Return(C.nvmlDeviceGetBAR1MemoryInfo(device.handle, (*C.nvmlBAR1Memory_t)(unsafe.Pointer(bar1Memory))))
}

func nvmlDeviceGetUtilizationRates(device nvmlDevice, utilization *Utilization) Return {
	return Return(C.nvmlDeviceGetUtilizationRates(device.handle, (*C.nvmlUtilization_t)(unsafe.Pointer(utilization))))
}

func nvmlDeviceGetEncoderUtilization(device nvmlDevice, utilization *uint32, samplingPeriodUs *uint32) Return {
	return Return(C.nvmlDeviceGetEncoderUtilization(device.handle, (*C.uint)(unsafe.Pointer(utilization)), (*C.uint)(unsafe.Pointer(samplingPeriodUs))))
}

func nvmlDeviceGetDecoderUtilization(device nvmlDevice, utilization *uint32, samplingPeriodUs *uint32) Return {
	return Return(C.nvmlDeviceGetDecoderUtilization(device.handle, (*C.uint)(unsafe.Pointer(utilization)), (*C.uint)(unsafe.Pointer(samplingPeriodUs))))
}

func nvmlDeviceGetEncoderSessions(device nvmlDevice, sessionCount *uint32, sessionInfos *EncoderSessionInfo) Return {
	return Return(C.nvmlDeviceGetEncoderSessions(device.handle, (*C.uint)(unsafe.Pointer(sessionCount)), (*C.nvmlEncoderSessionInfo_t)(unsafe.Pointer(sessionInfos))))
}

func nvmlDeviceGetTemperature(device nvmlDevice, sensorType TemperatureSensors, temp *uint32) Return {
	return Return(C.nvmlDeviceGetTemperature(device.handle, C.nvmlTemperatureSensors_t(sensorType), (*C.uint)(unsafe.Pointer(temp))))
}

func nvmlDeviceGetTemperatureThreshold(device nvmlDevice, thresholdType TemperatureThresholds, temp *uint32) Return {
	return Return(C.nvmlDeviceGetTemperatureThreshold(device.handle, C.nvmlTemperatureThresholds_t(thresholdType), (*C.uint)(unsafe.Pointer(temp))))
}

func nvmlDeviceGetFanSpeed(device nvmlDevice, speed *uint32) Return {
	return Return(C.nvmlDeviceGetFanSpeed(device.handle, (*C.uint)(unsafe.Pointer(speed))))
}

func nvmlDeviceGetPowerUsage(device nvmlDevice, power *uint32) Return {
	return Return(C.nvmlDeviceGetPowerUsage(device.handle, (*C.uint)(unsafe.Pointer(power))))
}

func nvmlDeviceGetPowerManagementLimit(device nvmlDevice, limit *uint32) Return {
	return Return(C.nvmlDeviceGetPowerManagementLimit(device.handle, (*C.uint)(unsafe.Pointer(limit))))
}

func nvmlDeviceGetEnforcedPowerLimit(device nvmlDevice, limit *uint32) Return {
	return Return(C.nvmlDeviceGetEnforcedPowerLimit(device.handle, (*C.uint)(unsafe.Pointer(limit))))
}

func nvmlDeviceGetPerformanceState(device nvmlDevice, pState *Pstates) Return {
	return Return(C.nvmlDeviceGetPerformanceState(device.handle, (*C.nvmlPstates_t)(unsafe.Pointer(pState))))
}

func nvmlDeviceGetClockInfo(device nvmlDevice, clockType ClockType, clock *uint32) Return {
	return Return(C.nvmlDeviceGetClockInfo(device.handle, C.nvmlClockType_t(clockType), (*C.uint)(unsafe.Pointer(clock))))
}

func nvmlDeviceGetMaxClockInfo(device nvmlDevice, clockType ClockType, clock *uint32) Return {
	return Return(C.nvmlDeviceGetMaxClockInfo(device.handle, C.nvmlClockType_t(clockType), (*C.uint)(unsafe.Pointer(clock))))
}

func nvmlDeviceGetPersistenceMode(device nvmlDevice, mode *EnableState) Return {
	return Return(C.nvmlDeviceGetPersistenceMode(device.handle, (*C.nvmlEnableState_t)(unsafe.Pointer(mode))))
}

func nvmlDeviceSetPersistenceMode(device nvmlDevice, mode EnableState) Return {
	return Return(C.nvmlDeviceSetPersistenceMode(device.handle, C.nvmlEnableState_t(mode)))
}

func nvmlDeviceGetComputeMode(device nvmlDevice, mode *ComputeMode) Return {
	return Return(C.nvmlDeviceGetComputeMode(device.handle, (*C.nvmlComputeMode_t)(unsafe.Pointer(mode))))
}

func nvmlDeviceSetComputeMode(device nvmlDevice, mode ComputeMode) Return {
	return Return(C.nvmlDeviceSetComputeMode(device.handle, C.nvmlComputeMode_t(mode)))
}

func nvmlDeviceGetEccMode(device nvmlDevice, current *EnableState, pending *EnableState) Return {
	return Return(C.nvmlDeviceGetEccMode(device.handle, (*C.nvmlEnableState_t)(unsafe.Pointer(current)), (*C.nvmlEnableState_t)(unsafe.Pointer(pending))))
}

func nvmlDeviceGetTotalEccErrors(device nvmlDevice, errorType MemoryErrorType, counterType EccCounterType, eccCounts *uint64) Return {
	return Return(C.nvmlDeviceGetTotalEccErrors(device.handle, C.nvmlMemoryErrorType_t(errorType), C.nvmlEccCounterType_t(counterType), (*C.ulonglong)(unsafe.Pointer(eccCounts))))
}

func nvmlDeviceGetDetailedEccErrors(device nvmlDevice, errorType MemoryErrorType, counterType EccCounterType, eccCounts *EccErrorCounts) Return {
	return Return(C.nvmlDeviceGetDetailedEccErrors(device.handle, C.nvmlMemoryErrorType_t(errorType), C.nvmlEccCounterType_t(counterType), (*C.nvmlEccErrorCounts_t)(unsafe.Pointer(eccCounts))))
}

func nvmlDeviceGetPciInfo_v1(device nvmlDevice, pci *PciInfo) Return {
	return Return(C.nvmlDeviceGetPciInfo(device.handle, (*C.nvmlPciInfo_t)(unsafe.Pointer(pci))))
}

func nvmlDeviceGetPciInfo_v2(device nvmlDevice, pci *PciInfo) Return {
	return Return(C.nvmlDeviceGetPciInfo_v2(device.handle, (*C.nvmlPciInfo_t)(unsafe.Pointer(pci))))
}

func nvmlDeviceGetPciInfo_v3(device nvmlDevice, pci *PciInfo) Return {
	return Return(C.nvmlDeviceGetPciInfo_v3(device.handle, (*C.nvmlPciInfo_t)(unsafe.Pointer(pci))))
}

func nvmlDeviceGetComputeRunningProcesses_v1(device nvmlDevice, infoCount *uint32, infos *ProcessInfo_v1) Return {
	return Return(C.nvmlDeviceGetComputeRunningProcesses(device.handle, (*C.uint)(unsafe.Pointer(infoCount)), (*C.nvmlProcessInfo_v1_t)(unsafe.Pointer(infos))))
}

func nvmlDeviceGetComputeRunningProcesses_v2(device nvmlDevice, infoCount *uint32, infos *ProcessInfo) Return {
	return Return(C.nvmlDeviceGetComputeRunningProcesses_v2(device.handle, (*C.uint)(unsafe.Pointer(infoCount)), (*C.nvmlProcessInfo_t)(unsafe.Pointer(infos))))
}

func nvmlDeviceGetGraphicsRunningProcesses_v1(device nvmlDevice, infoCount *uint32, infos *ProcessInfo_v1) Return {
	return Return(C.nvmlDeviceGetGraphicsRunningProcesses(device.handle, (*C.uint)(unsafe.Pointer(infoCount)), (*C.nvmlProcessInfo_v1_t)(unsafe.Pointer(infos))))
}

func nvmlDeviceGetGraphicsRunningProcesses_v2(device nvmlDevice, infoCount *uint32, infos *ProcessInfo) Return {
	return Return(C.nvmlDeviceGetGraphicsRunningProcesses_v2(device.handle, (*C.uint)(unsafe.Pointer(infoCount)), (*C.nvmlProcessInfo_t)(unsafe.Pointer(infos))))
}

func nvmlDeviceGetProcessUtilization(device nvmlDevice, utilization *ProcessUtilizationSample, processSamplesCount *uint32, lastSeenTimeStamp uint64) Return {
	return Return(C.nvmlDeviceGetProcessUtilization(device.handle, (*C.nvmlProcessUtilizationSample_t)(unsafe.Pointer(utilization)), (*C.uint)(unsafe.Pointer(processSamplesCount)), C.ulonglong(lastSeenTimeStamp)))
}

func nvmlDeviceGetSamples(device nvmlDevice, samplingType SamplingType, lastSeenTimeStamp uint64, sampleValType *ValueType, sampleCount *uint32, samples *Sample) Return {
	return Return(C.nvmlDeviceGetSamples(device.handle, C.nvmlSamplingType_t(samplingType), C.ulonglong(lastSeenTimeStamp), (*C.nvmlValueType_t)(unsafe.Pointer(sampleValType)), (*C.uint)(unsafe.Pointer(sampleCount)), (*C.nvmlSample_t)(unsafe.Pointer(samples))))
}

func nvmlDeviceGetViolationStatus(device nvmlDevice, perfPolicyType PerfPolicyType, violTime *ViolationTime) Return {
	return Return(C.nvmlDeviceGetViolationStatus(device.handle, C.nvmlPerfPolicyType_t(perfPolicyType), (*C.nvmlViolationTime_t)(unsafe.Pointer(violTime))))
}

func nvmlDeviceGetAccountingMode(device nvmlDevice, mode *EnableState) Return {
	return Return(C.nvmlDeviceGetAccountingMode(device.handle, (*C.nvmlEnableState_t)(unsafe.Pointer(mode))))
}

func nvmlDeviceSetAccountingMode(device nvmlDevice, mode EnableState) Return {
	return Return(C.nvmlDeviceSetAccountingMode(device.handle, C.nvmlEnableState_t(mode)))
}

func nvmlDeviceGetAccountingStats(device nvmlDevice, pid uint32, stats *AccountingStats) Return {
	return Return(C.nvmlDeviceGetAccountingStats(device.handle, C.uint(pid), (*C.nvmlAccountingStats_t)(unsafe.Pointer(stats))))
}

func nvmlDeviceGetAccountingPids(device nvmlDevice, count *uint32, pids *uint32) Return {
	return Return(C.nvmlDeviceGetAccountingPids(device.handle, (*C.uint)(unsafe.Pointer(count)), (*C.uint)(unsafe.Pointer(pids))))
}

func nvmlDeviceGetAccountingBufferSize(device nvmlDevice, bufferSize *uint32) Return {
	return Return(C.nvmlDeviceGetAccountingBufferSize(device.handle, (*C.uint)(unsafe.Pointer(bufferSize))))
}

func nvmlDeviceClearAccountingPids(device nvmlDevice) Return {
	return Return(C.nvmlDeviceClearAccountingPids(device.handle))
}

func nvmlDeviceGetBridgeChipInfo(device nvmlDevice, bridgeHierarchy *BridgeChipHierarchy) Return {
	return Return(C.nvmlDeviceGetBridgeChipInfo(device.handle, (*C.nvmlBridgeChipHierarchy_t)(unsafe.Pointer(bridgeHierarchy))))
}

func nvmlDeviceGetTopologyCommonAncestor(device1 nvmlDevice, device2 nvmlDevice, pathInfo *GpuTopologyLevel) Return {
	return Return(C.nvmlDeviceGetTopologyCommonAncestor(device1.handle, device2.handle, (*C.nvmlGpuTopologyLevel_t)(unsafe.Pointer(pathInfo))))
}

func nvmlDeviceGetTopologyNearestGpus(device nvmlDevice, level GpuTopologyLevel, count *uint32, deviceArray *nvmlDevice) Return {
	return Return(C.nvmlDeviceGetTopologyNearestGpus(device.handle, C.nvmlGpuTopologyLevel_t(level), (*C.uint)(unsafe.Pointer(count)), (*C.nvmlDevice_t)(unsafe.Pointer(deviceArray))))
}

func nvmlDeviceGetNvLinkState(device nvmlDevice, link uint32, isActive *EnableState) Return {
	return Return(C.nvmlDeviceGetNvLinkState(device.handle, C.uint(link), (*C.nvmlEnableState_t)(unsafe.Pointer(isActive))))
}

func nvmlDeviceGetNvLinkVersion(device nvmlDevice, link uint32, version *uint32) Return {
	return Return(C.nvmlDeviceGetNvLinkVersion(device.handle, C.uint(link), (*C.uint)(unsafe.Pointer(version))))
}

func nvmlDeviceGetNvLinkCapability(device nvmlDevice, link uint32, capability NvLinkCapability, capResult *uint32) Return {
	return Return(C.nvmlDeviceGetNvLinkCapability(device.handle, C.uint(link), C.nvmlNvLinkCapability_t(capability), (*C.uint)(unsafe.Pointer(capResult))))
}

func nvmlDeviceGetNvLinkRemotePciInfo_v1(device nvmlDevice, link uint32, pci *PciInfo) Return {
	return Return(C.nvmlDeviceGetNvLinkRemotePciInfo(device.handle, C.uint(link), (*C.nvmlPciInfo_t)(unsafe.Pointer(pci))))
}

func nvmlDeviceGetNvLinkRemotePciInfo_v2(device nvmlDevice, link uint32, pci *PciInfo) Return {
	return Return(C.nvmlDeviceGetNvLinkRemotePciInfo_v2(device.handle, C.uint(link), (*C.nvmlPciInfo_t)(unsafe.Pointer(pci))))
}

func nvmlDeviceGetNvLinkErrorCounter(device nvmlDevice, link uint32, counter NvLinkErrorCounter, counterValue *uint64) Return {
	return Return(C.nvmlDeviceGetNvLinkErrorCounter(device.handle, C.uint(link), C.nvmlNvLinkErrorCounter_t(counter), (*C.ulonglong)(unsafe.Pointer(counterValue))))
}

func nvmlDeviceResetNvLinkErrorCounters(device nvmlDevice, link uint32) Return {
	return Return(C.nvmlDeviceResetNvLinkErrorCounters(device.handle, C.uint(link)))
}

func nvmlDeviceSetNvLinkUtilizationControl(device nvmlDevice, link uint32, counter uint32, control *NvLinkUtilizationControl, reset uint32) Return {
	return Return(C.nvmlDeviceSetNvLinkUtilizationControl(device.handle, C.uint(link), C.uint(counter), (*C.nvmlNvLinkUtilizationControl_t)(unsafe.Pointer(control)), C.uint(reset)))
}

func nvmlDeviceGetNvLinkUtilizationControl(device nvmlDevice, link uint32, counter uint32, control *NvLinkUtilizationControl) Return {
	return Return(C.nvmlDeviceGetNvLinkUtilizationControl(device.handle, C.uint(link), C.uint(counter), (*C.nvmlNvLinkUtilizationControl_t)(unsafe.Pointer(control))))
}

func nvmlDeviceGetNvLinkUtilizationCounter(device nvmlDevice, link uint32, counter uint32, rxcounter *uint64, txcounter *uint64) Return {
	return Return(C.nvmlDeviceGetNvLinkUtilizationCounter(device.handle, C.uint(link), C.uint(counter), (*C.ulonglong)(unsafe.Pointer(rxcounter)), (*C.ulonglong)(unsafe.Pointer(txcounter))))
}

func nvmlDeviceFreezeNvLinkUtilizationCounter(device nvmlDevice, link uint32, counter uint32, freeze EnableState) Return {
	return Return(C.nvmlDeviceFreezeNvLinkUtilizationCounter(device.handle, C.uint(link), C.uint(counter), C.nvmlEnableState_t(freeze)))
}

func nvmlDeviceResetNvLinkUtilizationCounter(device nvmlDevice, link uint32, counter uint32) Return {
	return Return(C.nvmlDeviceResetNvLinkUtilizationCounter(device.handle, C.uint(link), C.uint(counter)))
}

func nvmlEventSetCreate(set *nvmlEventSet) Return {
	return Return(C.nvmlEventSetCreate(&set.handle))
}

func nvmlDeviceRegisterEvents(device nvmlDevice, eventTypes uint64, set nvmlEventSet) Return {
	return Return(C.nvmlDeviceRegisterEvents(device.handle, C.ulonglong(eventTypes), set.handle))
}

func nvmlDeviceGetSupportedEventTypes(device nvmlDevice, eventTypes *uint64) Return {
	return Return(C.nvmlDeviceGetSupportedEventTypes(device.handle, (*C.ulonglong)(unsafe.Pointer(eventTypes))))
}

func nvmlEventSetWait_v1(set nvmlEventSet, data *nvmlEventData, timeoutms uint32) Return {
	return Return(C.nvmlEventSetWait(set.handle, (*C.nvmlEventData_t)(unsafe.Pointer(data)), C.uint(timeoutms)))
}

func nvmlEventSetWait_v2(set nvmlEventSet, data *nvmlEventData, timeoutms uint32) Return {
	return Return(C.nvmlEventSetWait_v2(set.handle, (*C.nvmlEventData_t)(unsafe.Pointer(data)), C.uint(timeoutms)))
}

func nvmlEventSetFree(set nvmlEventSet) Return {
	return Return(C.nvmlEventSetFree(set.handle))
}
