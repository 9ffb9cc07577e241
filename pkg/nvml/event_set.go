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

// nvml.EventSetCreate()
func EventSetCreate() (EventSet, Return) {
	return libnvml.EventSetCreate()
}

func (l *library) EventSetCreate() (EventSet, Return) {
	if !l.isLoaded() {
		return nvmlEventSet{}, ERROR_UNINITIALIZED
	}
	var set nvmlEventSet
	ret := nvmlEventSetCreate(&set)
	return set, ret
}

// nvml.EventSetWait()
func EventSetWait(set EventSet, timeoutms uint32) (EventData, Return) {
	return set.Wait(timeoutms)
}

func (set nvmlEventSet) Wait(timeoutms uint32) (EventData, Return) {
	if !libnvml.isLoaded() {
		return EventData{}, ERROR_UNINITIALIZED
	}
	var data nvmlEventData
	ret := nvmlEventSetWait(set, &data, timeoutms)
	return data.convert(), ret
}

func (d nvmlEventData) convert() EventData {
	return EventData{
		Device:            d.Device,
		EventType:         d.EventType,
		EventData:         d.EventData,
		GpuInstanceId:     d.GpuInstanceId,
		ComputeInstanceId: d.ComputeInstanceId,
	}
}

// nvml.EventSetFree()
func EventSetFree(set EventSet) Return {
	return set.Free()
}

func (set nvmlEventSet) Free() Return {
	if !libnvml.isLoaded() {
		return ERROR_UNINITIALIZED
	}
	return nvmlEventSetFree(set)
}

// nvml.DeviceRegisterEvents()
func DeviceRegisterEvents(device Device, eventTypes uint64, set EventSet) Return {
	return device.RegisterEvents(eventTypes, set)
}

func (device nvmlDevice) RegisterEvents(eventTypes uint64, set EventSet) Return {
	if !libnvml.isLoaded() {
		return ERROR_UNINITIALIZED
	}
	return nvmlDeviceRegisterEvents(device, eventTypes, nvmlEventSetHandle(set))
}

// nvml.DeviceGetSupportedEventTypes()
func DeviceGetSupportedEventTypes(device Device) (uint64, Return) {
	return device.GetSupportedEventTypes()
}

func (device nvmlDevice) GetSupportedEventTypes() (uint64, Return) {
	if !libnvml.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var eventTypes uint64
	ret := nvmlDeviceGetSupportedEventTypes(device, &eventTypes)
	return eventTypes, ret
}
