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

// nvml.DeviceGetCount()
func DeviceGetCount() (int, Return) {
	return libnvml.DeviceGetCount()
}

func (l *library) DeviceGetCount() (int, Return) {
	if !l.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var deviceCount uint32
	ret := nvmlDeviceGetCount(&deviceCount)
	return int(deviceCount), ret
}

// nvml.DeviceGetHandleByIndex()
func DeviceGetHandleByIndex(index int) (Device, Return) {
	return libnvml.DeviceGetHandleByIndex(index)
}

func (l *library) DeviceGetHandleByIndex(index int) (Device, Return) {
	if !l.isLoaded() {
		return nvmlDevice{}, ERROR_UNINITIALIZED
	}
	var device nvmlDevice
	ret := nvmlDeviceGetHandleByIndex(uint32(index), &device)
	return device, ret
}

// nvml.DeviceGetHandleBySerial()
func DeviceGetHandleBySerial(serial string) (Device, Return) {
	return libnvml.DeviceGetHandleBySerial(serial)
}

func (l *library) DeviceGetHandleBySerial(serial string) (Device, Return) {
	if !l.isLoaded() {
		return nvmlDevice{}, ERROR_UNINITIALIZED
	}
	var device nvmlDevice
	ret := nvmlDeviceGetHandleBySerial(serial, &device)
	return device, ret
}

// nvml.DeviceGetHandleByUUID()
func DeviceGetHandleByUUID(uuid string) (Device, Return) {
	return libnvml.DeviceGetHandleByUUID(uuid)
}

func (l *library) DeviceGetHandleByUUID(uuid string) (Device, Return) {
	if !l.isLoaded() {
		return nvmlDevice{}, ERROR_UNINITIALIZED
	}
	var device nvmlDevice
	ret := nvmlDeviceGetHandleByUUID(uuid, &device)
	return device, ret
}

// nvml.DeviceGetHandleByPciBusId()
func DeviceGetHandleByPciBusId(pciBusId string) (Device, Return) {
	return libnvml.DeviceGetHandleByPciBusId(pciBusId)
}

func (l *library) DeviceGetHandleByPciBusId(pciBusId string) (Device, Return) {
	if !l.isLoaded() {
		return nvmlDevice{}, ERROR_UNINITIALIZED
	}
	var device nvmlDevice
	ret := nvmlDeviceGetHandleByPciBusId(pciBusId, &device)
	return device, ret
}

// nvml.DeviceGetName()
func DeviceGetName(device Device) (string, Return) {
	return device.GetName()
}

func (device nvmlDevice) GetName() (string, Return) {
	if !libnvml.isLoaded() {
		return "", ERROR_UNINITIALIZED
	}
	name := make([]byte, DEVICE_NAME_V2_BUFFER_SIZE)
	ret := nvmlDeviceGetName(device, &name[0], DEVICE_NAME_V2_BUFFER_SIZE)
	return string(name[:clen(name)]), ret
}

// nvml.DeviceGetBrand()
func DeviceGetBrand(device Device) (BrandType, Return) {
	return device.GetBrand()
}

func (device nvmlDevice) GetBrand() (BrandType, Return) {
	if !libnvml.isLoaded() {
		return BRAND_UNKNOWN, ERROR_UNINITIALIZED
	}
	var brandType BrandType
	ret := nvmlDeviceGetBrand(device, &brandType)
	return brandType, ret
}

// nvml.DeviceGetIndex()
func DeviceGetIndex(device Device) (int, Return) {
	return device.GetIndex()
}

func (device nvmlDevice) GetIndex() (int, Return) {
	if !libnvml.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var index uint32
	ret := nvmlDeviceGetIndex(device, &index)
	return int(index), ret
}

// nvml.DeviceGetSerial()
func DeviceGetSerial(device Device) (string, Return) {
	return device.GetSerial()
}

func (device nvmlDevice) GetSerial() (string, Return) {
	if !libnvml.isLoaded() {
		return "", ERROR_UNINITIALIZED
	}
	serial := make([]byte, DEVICE_SERIAL_BUFFER_SIZE)
	ret := nvmlDeviceGetSerial(device, &serial[0], DEVICE_SERIAL_BUFFER_SIZE)
	return string(serial[:clen(serial)]), ret
}

// nvml.DeviceGetUUID()
func DeviceGetUUID(device Device) (string, Return) {
	return device.GetUUID()
}

func (device nvmlDevice) GetUUID() (string, Return) {
	if !libnvml.isLoaded() {
		return "", ERROR_UNINITIALIZED
	}
	uuid := make([]byte, DEVICE_UUID_V2_BUFFER_SIZE)
	ret := nvmlDeviceGetUUID(device, &uuid[0], DEVICE_UUID_V2_BUFFER_SIZE)
	return string(uuid[:clen(uuid)]), ret
}

// nvml.DeviceGetMinorNumber()
func DeviceGetMinorNumber(device Device) (int, Return) {
	return device.GetMinorNumber()
}

func (device nvmlDevice) GetMinorNumber() (int, Return) {
	if !libnvml.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var minorNumber uint32
	ret := nvmlDeviceGetMinorNumber(device, &minorNumber)
	return int(minorNumber), ret
}

// nvml.DeviceGetBoardId()
func DeviceGetBoardId(device Device) (uint32, Return) {
	return device.GetBoardId()
}

func (device nvmlDevice) GetBoardId() (uint32, Return) {
	if !libnvml.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var boardId uint32
	ret := nvmlDeviceGetBoardId(device, &boardId)
	return boardId, ret
}

// nvml.DeviceOnSameBoard()
func DeviceOnSameBoard(device1 Device, device2 Device) (bool, Return) {
	return device1.OnSameBoard(device2)
}

func (device nvmlDevice) OnSameBoard(device2 Device) (bool, Return) {
	if !libnvml.isLoaded() {
		return false, ERROR_UNINITIALIZED
	}
	var onSameBoard int32
	ret := nvmlDeviceOnSameBoard(device, nvmlDeviceHandle(device2), &onSameBoard)
	return onSameBoard != 0, ret
}

// nvml.DeviceGetVbiosVersion()
func DeviceGetVbiosVersion(device Device) (string, Return) {
	return device.GetVbiosVersion()
}

func (device nvmlDevice) GetVbiosVersion() (string, Return) {
	if !libnvml.isLoaded() {
		return "", ERROR_UNINITIALIZED
	}
	version := make([]byte, DEVICE_VBIOS_VERSION_BUFFER_SIZE)
	ret := nvmlDeviceGetVbiosVersion(device, &version[0], DEVICE_VBIOS_VERSION_BUFFER_SIZE)
	return string(version[:clen(version)]), ret
}

// nvml.DeviceGetInforomVersion()
func DeviceGetInforomVersion(device Device, object InforomObject) (string, Return) {
	return device.GetInforomVersion(object)
}

func (device nvmlDevice) GetInforomVersion(object InforomObject) (string, Return) {
	if !libnvml.isLoaded() {
		return "", ERROR_UNINITIALIZED
	}
	version := make([]byte, DEVICE_INFOROM_VERSION_BUFFER_SIZE)
	ret := nvmlDeviceGetInforomVersion(device, object, &version[0], DEVICE_INFOROM_VERSION_BUFFER_SIZE)
	return string(version[:clen(version)]), ret
}

// nvml.DeviceGetCudaComputeCapability()
func DeviceGetCudaComputeCapability(device Device) (int, int, Return) {
	return device.GetCudaComputeCapability()
}

func (device nvmlDevice) GetCudaComputeCapability() (int, int, Return) {
	if !libnvml.isLoaded() {
		return 0, 0, ERROR_UNINITIALIZED
	}
	var major, minor int32
	ret := nvmlDeviceGetCudaComputeCapability(device, &major, &minor)
	return int(major), int(minor), ret
}

// nvml.DeviceGetMemoryInfo()
func DeviceGetMemoryInfo(device Device) (Memory, Return) {
	return device.GetMemoryInfo()
}

func (device nvmlDevice) GetMemoryInfo() (Memory, Return) {
	if !libnvml.isLoaded() {
		return Memory{}, ERROR_UNINITIALIZED
	}
	var memory Memory
	ret := nvmlDeviceGetMemoryInfo(device, &memory)
	return memory, ret
}

// nvml.DeviceGetBAR1MemoryInfo()
func DeviceGetBAR1MemoryInfo(device Device) (BAR1Memory, Return) {
	return device.GetBAR1MemoryInfo()
}

func (device nvmlDevice) GetBAR1MemoryInfo() (BAR1Memory, Return) {
	if !libnvml.isLoaded() {
		return BAR1Memory{}, ERROR_UNINITIALIZED
	}
	var bar1Memory BAR1Memory
	ret := nvmlDeviceGetBAR1MemoryInfo(device, &bar1Memory)
	return bar1Memory, ret
}

// nvml.DeviceGetUtilizationRates()
func DeviceGetUtilizationRates(device Device) (Utilization, Return) {
	return device.GetUtilizationRates()
}

func (device nvmlDevice) GetUtilizationRates() (Utilization, Return) {
	if !libnvml.isLoaded() {
		return Utilization{}, ERROR_UNINITIALIZED
	}
	var utilization Utilization
	ret := nvmlDeviceGetUtilizationRates(device, &utilization)
	return utilization, ret
}

// nvml.DeviceGetEncoderUtilization()
func DeviceGetEncoderUtilization(device Device) (uint32, uint32, Return) {
	return device.GetEncoderUtilization()
}

func (device nvmlDevice) GetEncoderUtilization() (uint32, uint32, Return) {
	if !libnvml.isLoaded() {
		return 0, 0, ERROR_UNINITIALIZED
	}
	var utilization, samplingPeriodUs uint32
	ret := nvmlDeviceGetEncoderUtilization(device, &utilization, &samplingPeriodUs)
	return utilization, samplingPeriodUs, ret
}

// nvml.DeviceGetDecoderUtilization()
func DeviceGetDecoderUtilization(device Device) (uint32, uint32, Return) {
	return device.GetDecoderUtilization()
}

func (device nvmlDevice) GetDecoderUtilization() (uint32, uint32, Return) {
	if !libnvml.isLoaded() {
		return 0, 0, ERROR_UNINITIALIZED
	}
	var utilization, samplingPeriodUs uint32
	ret := nvmlDeviceGetDecoderUtilization(device, &utilization, &samplingPeriodUs)
	return utilization, samplingPeriodUs, ret
}

// nvml.DeviceGetEncoderSessions()
func DeviceGetEncoderSessions(device Device) ([]EncoderSessionInfo, Return) {
	return device.GetEncoderSessions()
}

func (device nvmlDevice) GetEncoderSessions() ([]EncoderSessionInfo, Return) {
	if !libnvml.isLoaded() {
		return nil, ERROR_UNINITIALIZED
	}
	var sessionCount uint32 = 1 // Will be reduced upon returning
	for {
		sessionInfos := make([]EncoderSessionInfo, sessionCount)
		ret := nvmlDeviceGetEncoderSessions(device, &sessionCount, &sessionInfos[0])
		if ret == SUCCESS {
			return sessionInfos[:sessionCount], ret
		}
		if ret != ERROR_INSUFFICIENT_SIZE {
			return nil, ret
		}
		sessionCount *= 2
	}
}

// nvml.DeviceGetTemperature()
func DeviceGetTemperature(device Device, sensorType TemperatureSensors) (uint32, Return) {
	return device.GetTemperature(sensorType)
}

func (device nvmlDevice) GetTemperature(sensorType TemperatureSensors) (uint32, Return) {
	if !libnvml.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var temp uint32
	ret := nvmlDeviceGetTemperature(device, sensorType, &temp)
	return temp, ret
}

// nvml.DeviceGetTemperatureThreshold()
func DeviceGetTemperatureThreshold(device Device, thresholdType TemperatureThresholds) (uint32, Return) {
	return device.GetTemperatureThreshold(thresholdType)
}

func (device nvmlDevice) GetTemperatureThreshold(thresholdType TemperatureThresholds) (uint32, Return) {
	if !libnvml.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var temp uint32
	ret := nvmlDeviceGetTemperatureThreshold(device, thresholdType, &temp)
	return temp, ret
}

// nvml.DeviceGetFanSpeed()
func DeviceGetFanSpeed(device Device) (uint32, Return) {
	return device.GetFanSpeed()
}

func (device nvmlDevice) GetFanSpeed() (uint32, Return) {
	if !libnvml.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var speed uint32
	ret := nvmlDeviceGetFanSpeed(device, &speed)
	return speed, ret
}

// nvml.DeviceGetPowerUsage()
func DeviceGetPowerUsage(device Device) (uint32, Return) {
	return device.GetPowerUsage()
}

func (device nvmlDevice) GetPowerUsage() (uint32, Return) {
	if !libnvml.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var power uint32
	ret := nvmlDeviceGetPowerUsage(device, &power)
	return power, ret
}

// nvml.DeviceGetPowerManagementLimit()
func DeviceGetPowerManagementLimit(device Device) (uint32, Return) {
	return device.GetPowerManagementLimit()
}

func (device nvmlDevice) GetPowerManagementLimit() (uint32, Return) {
	if !libnvml.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var limit uint32
	ret := nvmlDeviceGetPowerManagementLimit(device, &limit)
	return limit, ret
}

// nvml.DeviceGetEnforcedPowerLimit()
func DeviceGetEnforcedPowerLimit(device Device) (uint32, Return) {
	return device.GetEnforcedPowerLimit()
}

func (device nvmlDevice) GetEnforcedPowerLimit() (uint32, Return) {
	if !libnvml.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var limit uint32
	ret := nvmlDeviceGetEnforcedPowerLimit(device, &limit)
	return limit, ret
}

// nvml.DeviceGetPerformanceState()
func DeviceGetPerformanceState(device Device) (Pstates, Return) {
	return device.GetPerformanceState()
}

func (device nvmlDevice) GetPerformanceState() (Pstates, Return) {
	if !libnvml.isLoaded() {
		return PSTATE_UNKNOWN, ERROR_UNINITIALIZED
	}
	var pState Pstates
	ret := nvmlDeviceGetPerformanceState(device, &pState)
	return pState, ret
}

// nvml.DeviceGetClockInfo()
func DeviceGetClockInfo(device Device, clockType ClockType) (uint32, Return) {
	return device.GetClockInfo(clockType)
}

func (device nvmlDevice) GetClockInfo(clockType ClockType) (uint32, Return) {
	if !libnvml.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var clock uint32
	ret := nvmlDeviceGetClockInfo(device, clockType, &clock)
	return clock, ret
}

// nvml.DeviceGetMaxClockInfo()
func DeviceGetMaxClockInfo(device Device, clockType ClockType) (uint32, Return) {
	return device.GetMaxClockInfo(clockType)
}

func (device nvmlDevice) GetMaxClockInfo(clockType ClockType) (uint32, Return) {
	if !libnvml.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var clock uint32
	ret := nvmlDeviceGetMaxClockInfo(device, clockType, &clock)
	return clock, ret
}

// nvml.DeviceGetPersistenceMode()
func DeviceGetPersistenceMode(device Device) (EnableState, Return) {
	return device.GetPersistenceMode()
}

func (device nvmlDevice) GetPersistenceMode() (EnableState, Return) {
	if !libnvml.isLoaded() {
		return FEATURE_DISABLED, ERROR_UNINITIALIZED
	}
	var mode EnableState
	ret := nvmlDeviceGetPersistenceMode(device, &mode)
	return mode, ret
}

// nvml.DeviceSetPersistenceMode()
func DeviceSetPersistenceMode(device Device, mode EnableState) Return {
	return device.SetPersistenceMode(mode)
}

func (device nvmlDevice) SetPersistenceMode(mode EnableState) Return {
	if !libnvml.isLoaded() {
		return ERROR_UNINITIALIZED
	}
	return nvmlDeviceSetPersistenceMode(device, mode)
}

// nvml.DeviceGetComputeMode()
func DeviceGetComputeMode(device Device) (ComputeMode, Return) {
	return device.GetComputeMode()
}

func (device nvmlDevice) GetComputeMode() (ComputeMode, Return) {
	if !libnvml.isLoaded() {
		return COMPUTEMODE_DEFAULT, ERROR_UNINITIALIZED
	}
	var mode ComputeMode
	ret := nvmlDeviceGetComputeMode(device, &mode)
	return mode, ret
}

// nvml.DeviceSetComputeMode()
func DeviceSetComputeMode(device Device, mode ComputeMode) Return {
	return device.SetComputeMode(mode)
}

func (device nvmlDevice) SetComputeMode(mode ComputeMode) Return {
	if !libnvml.isLoaded() {
		return ERROR_UNINITIALIZED
	}
	return nvmlDeviceSetComputeMode(device, mode)
}

// nvml.DeviceGetEccMode()
func DeviceGetEccMode(device Device) (EnableState, EnableState, Return) {
	return device.GetEccMode()
}

func (device nvmlDevice) GetEccMode() (EnableState, EnableState, Return) {
	if !libnvml.isLoaded() {
		return FEATURE_DISABLED, FEATURE_DISABLED, ERROR_UNINITIALIZED
	}
	var current, pending EnableState
	ret := nvmlDeviceGetEccMode(device, &current, &pending)
	return current, pending, ret
}

// nvml.DeviceGetTotalEccErrors()
func DeviceGetTotalEccErrors(device Device, errorType MemoryErrorType, counterType EccCounterType) (uint64, Return) {
	return device.GetTotalEccErrors(errorType, counterType)
}

func (device nvmlDevice) GetTotalEccErrors(errorType MemoryErrorType, counterType EccCounterType) (uint64, Return) {
	if !libnvml.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var eccCounts uint64
	ret := nvmlDeviceGetTotalEccErrors(device, errorType, counterType, &eccCounts)
	return eccCounts, ret
}

// nvml.DeviceGetDetailedEccErrors()
func DeviceGetDetailedEccErrors(device Device, errorType MemoryErrorType, counterType EccCounterType) (EccErrorCounts, Return) {
	return device.GetDetailedEccErrors(errorType, counterType)
}

func (device nvmlDevice) GetDetailedEccErrors(errorType MemoryErrorType, counterType EccCounterType) (EccErrorCounts, Return) {
	if !libnvml.isLoaded() {
		return EccErrorCounts{}, ERROR_UNINITIALIZED
	}
	var eccCounts EccErrorCounts
	ret := nvmlDeviceGetDetailedEccErrors(device, errorType, counterType, &eccCounts)
	return eccCounts, ret
}

// nvml.DeviceGetPciInfo()
func DeviceGetPciInfo(device Device) (PciInfo, Return) {
	return device.GetPciInfo()
}

func (device nvmlDevice) GetPciInfo() (PciInfo, Return) {
	if !libnvml.isLoaded() {
		return PciInfo{}, ERROR_UNINITIALIZED
	}
	var pci PciInfo
	ret := nvmlDeviceGetPciInfo(device, &pci)
	return pci, ret
}

func deviceGetComputeRunningProcesses_v1(device nvmlDevice) ([]ProcessInfo, Return) {
	var infoCount uint32 = 1 // Will be reduced upon returning
	for {
		infos := make([]ProcessInfo_v1, infoCount)
		ret := nvmlDeviceGetComputeRunningProcesses_v1(device, &infoCount, &infos[0])
		if ret == SUCCESS {
			return ProcessInfo_v1Slice(infos[:infoCount]).ToProcessInfoSlice(), ret
		}
		if ret != ERROR_INSUFFICIENT_SIZE {
			return nil, ret
		}
		infoCount *= 2
	}
}

func deviceGetComputeRunningProcesses_v2(device nvmlDevice) ([]ProcessInfo, Return) {
	var infoCount uint32 = 1 // Will be reduced upon returning
	for {
		infos := make([]ProcessInfo, infoCount)
		ret := nvmlDeviceGetComputeRunningProcesses_v2(device, &infoCount, &infos[0])
		if ret == SUCCESS {
			return infos[:infoCount], ret
		}
		if ret != ERROR_INSUFFICIENT_SIZE {
			return nil, ret
		}
		infoCount *= 2
	}
}

// nvml.DeviceGetComputeRunningProcesses()
func DeviceGetComputeRunningProcesses(device Device) ([]ProcessInfo, Return) {
	return device.GetComputeRunningProcesses()
}

func (device nvmlDevice) GetComputeRunningProcesses() ([]ProcessInfo, Return) {
	if !libnvml.isLoaded() {
		return nil, ERROR_UNINITIALIZED
	}
	return deviceGetComputeRunningProcesses(device)
}

func deviceGetGraphicsRunningProcesses_v1(device nvmlDevice) ([]ProcessInfo, Return) {
	var infoCount uint32 = 1 // Will be reduced upon returning
	for {
		infos := make([]ProcessInfo_v1, infoCount)
		ret := nvmlDeviceGetGraphicsRunningProcesses_v1(device, &infoCount, &infos[0])
		if ret == SUCCESS {
			return ProcessInfo_v1Slice(infos[:infoCount]).ToProcessInfoSlice(), ret
		}
		if ret != ERROR_INSUFFICIENT_SIZE {
			return nil, ret
		}
		infoCount *= 2
	}
}

func deviceGetGraphicsRunningProcesses_v2(device nvmlDevice) ([]ProcessInfo, Return) {
	var infoCount uint32 = 1 // Will be reduced upon returning
	for {
		infos := make([]ProcessInfo, infoCount)
		ret := nvmlDeviceGetGraphicsRunningProcesses_v2(device, &infoCount, &infos[0])
		if ret == SUCCESS {
			return infos[:infoCount], ret
		}
		if ret != ERROR_INSUFFICIENT_SIZE {
			return nil, ret
		}
		infoCount *= 2
	}
}

// nvml.DeviceGetGraphicsRunningProcesses()
func DeviceGetGraphicsRunningProcesses(device Device) ([]ProcessInfo, Return) {
	return device.GetGraphicsRunningProcesses()
}

func (device nvmlDevice) GetGraphicsRunningProcesses() ([]ProcessInfo, Return) {
	if !libnvml.isLoaded() {
		return nil, ERROR_UNINITIALIZED
	}
	return deviceGetGraphicsRunningProcesses(device)
}

// nvml.DeviceGetProcessUtilization()
func DeviceGetProcessUtilization(device Device, lastSeenTimeStamp uint64) ([]ProcessUtilizationSample, Return) {
	return device.GetProcessUtilization(lastSeenTimeStamp)
}

func (device nvmlDevice) GetProcessUtilization(lastSeenTimeStamp uint64) ([]ProcessUtilizationSample, Return) {
	if !libnvml.isLoaded() {
		return nil, ERROR_UNINITIALIZED
	}
	var processSamplesCount uint32
	ret := nvmlDeviceGetProcessUtilization(device, nil, &processSamplesCount, lastSeenTimeStamp)
	if ret != ERROR_INSUFFICIENT_SIZE {
		return nil, ret
	}
	if processSamplesCount == 0 {
		return []ProcessUtilizationSample{}, ret
	}
	utilization := make([]ProcessUtilizationSample, processSamplesCount)
	ret = nvmlDeviceGetProcessUtilization(device, &utilization[0], &processSamplesCount, lastSeenTimeStamp)
	return utilization[:processSamplesCount], ret
}

// nvml.DeviceGetSamples()
func DeviceGetSamples(device Device, samplingType SamplingType, lastSeenTimeStamp uint64) (ValueType, []Sample, Return) {
	return device.GetSamples(samplingType, lastSeenTimeStamp)
}

func (device nvmlDevice) GetSamples(samplingType SamplingType, lastSeenTimeStamp uint64) (ValueType, []Sample, Return) {
	if !libnvml.isLoaded() {
		return VALUE_TYPE_DOUBLE, nil, ERROR_UNINITIALIZED
	}
	var sampleValType ValueType
	var sampleCount uint32
	ret := nvmlDeviceGetSamples(device, samplingType, lastSeenTimeStamp, &sampleValType, &sampleCount, nil)
	if ret != SUCCESS {
		return sampleValType, nil, ret
	}
	if sampleCount == 0 {
		return sampleValType, []Sample{}, ret
	}
	samples := make([]Sample, sampleCount)
	ret = nvmlDeviceGetSamples(device, samplingType, lastSeenTimeStamp, &sampleValType, &sampleCount, &samples[0])
	return sampleValType, samples[:sampleCount], ret
}

// nvml.DeviceGetViolationStatus()
func DeviceGetViolationStatus(device Device, perfPolicyType PerfPolicyType) (ViolationTime, Return) {
	return device.GetViolationStatus(perfPolicyType)
}

func (device nvmlDevice) GetViolationStatus(perfPolicyType PerfPolicyType) (ViolationTime, Return) {
	if !libnvml.isLoaded() {
		return ViolationTime{}, ERROR_UNINITIALIZED
	}
	var violTime ViolationTime
	ret := nvmlDeviceGetViolationStatus(device, perfPolicyType, &violTime)
	return violTime, ret
}

// nvml.DeviceGetAccountingMode()
func DeviceGetAccountingMode(device Device) (EnableState, Return) {
	return device.GetAccountingMode()
}

func (device nvmlDevice) GetAccountingMode() (EnableState, Return) {
	if !libnvml.isLoaded() {
		return FEATURE_DISABLED, ERROR_UNINITIALIZED
	}
	var mode EnableState
	ret := nvmlDeviceGetAccountingMode(device, &mode)
	return mode, ret
}

// nvml.DeviceSetAccountingMode()
func DeviceSetAccountingMode(device Device, mode EnableState) Return {
	return device.SetAccountingMode(mode)
}

func (device nvmlDevice) SetAccountingMode(mode EnableState) Return {
	if !libnvml.isLoaded() {
		return ERROR_UNINITIALIZED
	}
	return nvmlDeviceSetAccountingMode(device, mode)
}

// nvml.DeviceGetAccountingStats()
func DeviceGetAccountingStats(device Device, pid uint32) (AccountingStats, Return) {
	return device.GetAccountingStats(pid)
}

func (device nvmlDevice) GetAccountingStats(pid uint32) (AccountingStats, Return) {
	if !libnvml.isLoaded() {
		return AccountingStats{}, ERROR_UNINITIALIZED
	}
	var stats AccountingStats
	ret := nvmlDeviceGetAccountingStats(device, pid, &stats)
	return stats, ret
}

// nvml.DeviceGetAccountingPids()
func DeviceGetAccountingPids(device Device) ([]int, Return) {
	return device.GetAccountingPids()
}

func (device nvmlDevice) GetAccountingPids() ([]int, Return) {
	if !libnvml.isLoaded() {
		return nil, ERROR_UNINITIALIZED
	}
	var count uint32 = 1 // Will be reduced upon returning
	for {
		pids := make([]uint32, count)
		ret := nvmlDeviceGetAccountingPids(device, &count, &pids[0])
		if ret == SUCCESS {
			return uint32SliceToIntSlice(pids[:count]), ret
		}
		if ret != ERROR_INSUFFICIENT_SIZE {
			return nil, ret
		}
		count *= 2
	}
}

func uint32SliceToIntSlice(s []uint32) []int {
	var r []int
	for _, v := range s {
		r = append(r, int(v))
	}
	return r
}

// nvml.DeviceGetAccountingBufferSize()
func DeviceGetAccountingBufferSize(device Device) (int, Return) {
	return device.GetAccountingBufferSize()
}

func (device nvmlDevice) GetAccountingBufferSize() (int, Return) {
	if !libnvml.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var bufferSize uint32
	ret := nvmlDeviceGetAccountingBufferSize(device, &bufferSize)
	return int(bufferSize), ret
}

// nvml.DeviceClearAccountingPids()
func DeviceClearAccountingPids(device Device) Return {
	return device.ClearAccountingPids()
}

func (device nvmlDevice) ClearAccountingPids() Return {
	if !libnvml.isLoaded() {
		return ERROR_UNINITIALIZED
	}
	return nvmlDeviceClearAccountingPids(device)
}

// nvml.DeviceGetBridgeChipInfo()
func DeviceGetBridgeChipInfo(device Device) (BridgeChipHierarchy, Return) {
	return device.GetBridgeChipInfo()
}

func (device nvmlDevice) GetBridgeChipInfo() (BridgeChipHierarchy, Return) {
	if !libnvml.isLoaded() {
		return BridgeChipHierarchy{}, ERROR_UNINITIALIZED
	}
	var bridgeHierarchy BridgeChipHierarchy
	ret := nvmlDeviceGetBridgeChipInfo(device, &bridgeHierarchy)
	return bridgeHierarchy, ret
}

// nvml.DeviceGetTopologyCommonAncestor()
func DeviceGetTopologyCommonAncestor(device1 Device, device2 Device) (GpuTopologyLevel, Return) {
	return device1.GetTopologyCommonAncestor(device2)
}

func (device nvmlDevice) GetTopologyCommonAncestor(device2 Device) (GpuTopologyLevel, Return) {
	if !libnvml.isLoaded() {
		return TOPOLOGY_INTERNAL, ERROR_UNINITIALIZED
	}
	var pathInfo GpuTopologyLevel
	ret := nvmlDeviceGetTopologyCommonAncestor(device, nvmlDeviceHandle(device2), &pathInfo)
	return pathInfo, ret
}

// nvml.DeviceGetTopologyNearestGpus()
func DeviceGetTopologyNearestGpus(device Device, level GpuTopologyLevel) ([]Device, Return) {
	return device.GetTopologyNearestGpus(level)
}

func (device nvmlDevice) GetTopologyNearestGpus(level GpuTopologyLevel) ([]Device, Return) {
	if !libnvml.isLoaded() {
		return nil, ERROR_UNINITIALIZED
	}
	var count uint32
	ret := nvmlDeviceGetTopologyNearestGpus(device, level, &count, nil)
	if ret != SUCCESS {
		return nil, ret
	}
	if count == 0 {
		return []Device{}, ret
	}
	deviceArray := make([]nvmlDevice, count)
	ret = nvmlDeviceGetTopologyNearestGpus(device, level, &count, &deviceArray[0])
	return convertSlice[nvmlDevice, Device](deviceArray[:count]), ret
}

func convertSlice[T any, I any](input []T) []I {
	output := make([]I, len(input))
	for i, in := range input {
		output[i] = any(in).(I)
	}
	return output
}
