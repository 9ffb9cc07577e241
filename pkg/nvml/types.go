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
	"unsafe"
)

// The structs in this file are copied by value across the foreign function
// boundary. Their field order, size and alignment must match the
// corresponding C structs in nvml.h exactly.

// PciInfo as declared in nvml.h.
type PciInfo struct {
	BusIdLegacy    [DEVICE_PCI_BUS_ID_BUFFER_V2_SIZE]int8
	Domain         uint32
	Bus            uint32
	Device         uint32
	PciDeviceId    uint32
	PciSubSystemId uint32
	BusId          [DEVICE_PCI_BUS_ID_BUFFER_SIZE]int8
}

// NewPciInfoFromBusID returns a PciInfo with both bus id fields populated
// from the string form of a PCI bus id. Input longer than the buffers is
// truncated, leaving room for the terminating NUL.
func NewPciInfoFromBusID(busID string) PciInfo {
	var p PciInfo
	for i := 0; i < len(busID) && i < len(p.BusId)-1; i++ {
		p.BusId[i] = int8(busID[i])
	}
	for i := 0; i < len(busID) && i < len(p.BusIdLegacy)-1; i++ {
		p.BusIdLegacy[i] = int8(busID[i])
	}
	return p
}

// BusIdString returns the string form of the PCI bus id, trimmed at the
// first NUL.
func (p PciInfo) BusIdString() string {
	buf := make([]byte, len(p.BusId))
	for i, c := range p.BusId {
		buf[i] = byte(c)
	}
	return string(buf[:clen(buf)])
}

// Memory as declared in nvml.h.
type Memory struct {
	Total uint64
	Free  uint64
	Used  uint64
}

// BAR1Memory as declared in nvml.h.
type BAR1Memory struct {
	Bar1Total uint64
	Bar1Free  uint64
	Bar1Used  uint64
}

// Utilization as declared in nvml.h.
type Utilization struct {
	Gpu    uint32
	Memory uint32
}

// ProcessInfo_v1 as declared in nvml.h.
type ProcessInfo_v1 struct {
	Pid           uint32
	UsedGpuMemory uint64
}

// ProcessInfo as declared in nvml.h.
type ProcessInfo struct {
	Pid               uint32
	UsedGpuMemory     uint64
	GpuInstanceId     uint32
	ComputeInstanceId uint32
}

// ProcessUtilizationSample as declared in nvml.h.
type ProcessUtilizationSample struct {
	Pid       uint32
	TimeStamp uint64
	SmUtil    uint32
	MemUtil   uint32
	EncUtil   uint32
	DecUtil   uint32
}

// EccErrorCounts as declared in nvml.h.
type EccErrorCounts struct {
	L1Cache      uint64
	L2Cache      uint64
	DeviceMemory uint64
	RegisterFile uint64
}

// ViolationTime as declared in nvml.h.
type ViolationTime struct {
	ReferenceTime uint64
	ViolationTime uint64
}

// AccountingStats as declared in nvml.h.
// Fields whose value equals VALUE_NOT_AVAILABLE were not collected by the
// driver.
type AccountingStats struct {
	GpuUtilization    uint32
	MemoryUtilization uint32
	MaxMemoryUsage    uint64
	Time              uint64
	StartTime         uint64
	IsRunning         uint32
	Reserved          [5]uint32
}

// ValueAvailable reports whether an accounting counter holds a collected
// value. Fields the driver could not sample are set to the all-ones
// VALUE_NOT_AVAILABLE sentinel.
func ValueAvailable[T ~uint32 | ~uint64](v T) bool {
	return v != ^T(0)
}

// EncoderSessionInfo as declared in nvml.h.
type EncoderSessionInfo struct {
	SessionId      uint32
	Pid            uint32
	VgpuInstance   uint32
	CodecType      EncoderType
	HResolution    uint32
	VResolution    uint32
	AverageFps     uint32
	AverageLatency uint32
}

// Value as declared in nvml.h. It is an 8-byte union; use the accessor
// matching the ValueType reported alongside it.
type Value [8]byte

// Double interprets the union as a double.
func (v Value) Double() float64 {
	return *(*float64)(unsafe.Pointer(&v[0]))
}

// UnsignedInt interprets the union as an unsigned int.
func (v Value) UnsignedInt() uint32 {
	return *(*uint32)(unsafe.Pointer(&v[0]))
}

// UnsignedLong interprets the union as an unsigned long.
func (v Value) UnsignedLong() uint64 {
	return *(*uint64)(unsafe.Pointer(&v[0]))
}

// UnsignedLongLong interprets the union as an unsigned long long.
func (v Value) UnsignedLongLong() uint64 {
	return *(*uint64)(unsafe.Pointer(&v[0]))
}

// SignedLongLong interprets the union as a signed long long.
func (v Value) SignedLongLong() int64 {
	return *(*int64)(unsafe.Pointer(&v[0]))
}

// Sample as declared in nvml.h.
type Sample struct {
	TimeStamp   uint64
	SampleValue Value
}

// NvLinkUtilizationControl as declared in nvml.h.
type NvLinkUtilizationControl struct {
	Units     NvLinkUtilizationCountUnits
	Pktfilter NvLinkUtilizationCountPktTypes
}

// BridgeChipInfo as declared in nvml.h.
type BridgeChipInfo struct {
	Type      BridgeChipType
	FwVersion uint32
}

// BridgeChipHierarchy as declared in nvml.h. The immediate bridge is
// stored at index 0; its parent at index 1, and so forth.
type BridgeChipHierarchy struct {
	BridgeCount    uint8
	BridgeChipInfo [MAX_PHYSICAL_BRIDGE]BridgeChipInfo
}

// EventData holds information about an occurred event. GpuInstanceId and
// ComputeInstanceId are only filled in when the driver exposes
// nvmlEventSetWait_v2; the v1 symbol leaves them zero.
type EventData struct {
	Device            Device
	EventType         uint64
	EventData         uint64
	GpuInstanceId     uint32
	ComputeInstanceId uint32
}

type ProcessInfo_v1Slice []ProcessInfo_v1

// ToProcessInfoSlice promotes v1 process info records to the current
// layout. GPU and compute instance ids do not exist in v1 and are marked
// invalid.
func (pis ProcessInfo_v1Slice) ToProcessInfoSlice() []ProcessInfo {
	var newInfos []ProcessInfo
	for _, pi := range pis {
		info := ProcessInfo{
			Pid:               pi.Pid,
			UsedGpuMemory:     pi.UsedGpuMemory,
			GpuInstanceId:     0xFFFFFFFF, // GPU instance ID is invalid in v1
			ComputeInstanceId: 0xFFFFFFFF, // Compute instance ID is invalid in v1
		}
		newInfos = append(newInfos, info)
	}
	return newInfos
}
