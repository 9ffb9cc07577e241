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

// Package dgxa100 provides a mock populated with the properties of an
// 8-GPU DGX A100 system. It is intended for testing code that consumes
// the nvml.Interface and nvml.Device APIs without access to real hardware.
package dgxa100

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/NVIDIA/go-nvml-wrapper/pkg/nvml"
	"github.com/NVIDIA/go-nvml-wrapper/pkg/nvml/mock"
)

type Server struct {
	mock.Interface
	Devices           [8]nvml.Device
	DriverVersion     string
	NvmlVersion       string
	CudaDriverVersion int
}

type Device struct {
	mock.Device
	sync.RWMutex
	UUID                 string
	Name                 string
	Brand                nvml.BrandType
	Serial               string
	PciBusID             string
	Minor                int
	Index                int
	CudaComputeCapMajor  int
	CudaComputeCapMinor  int
	Memory               nvml.Memory
	AccountingStatsByPid map[uint32]nvml.AccountingStats
}

var _ nvml.Interface = (*Server)(nil)
var _ nvml.Device = (*Device)(nil)

func New() *Server {
	server := &Server{
		Devices: [8]nvml.Device{
			NewDevice(0),
			NewDevice(1),
			NewDevice(2),
			NewDevice(3),
			NewDevice(4),
			NewDevice(5),
			NewDevice(6),
			NewDevice(7),
		},
		DriverVersion:     "550.54.15",
		NvmlVersion:       "12.550.54.15",
		CudaDriverVersion: 12040,
	}
	server.setMockFuncs()
	return server
}

func NewDevice(index int) *Device {
	device := &Device{
		UUID:                 "GPU-" + uuid.New().String(),
		Name:                 "Mock NVIDIA A100-SXM4-40GB",
		Brand:                nvml.BRAND_TESLA,
		Serial:               fmt.Sprintf("153122407%03d", index),
		PciBusID:             fmt.Sprintf("0000:%02x:00.0", index),
		Minor:                index,
		Index:                index,
		CudaComputeCapMajor:  8,
		CudaComputeCapMinor:  0,
		Memory:               nvml.Memory{Total: 42949672960, Free: 42949672960},
		AccountingStatsByPid: make(map[uint32]nvml.AccountingStats),
	}
	device.setMockFuncs()
	return device
}

func (s *Server) setMockFuncs() {
	s.InitFunc = func() nvml.Return {
		return nvml.SUCCESS
	}

	s.InitWithFlagsFunc = func(flags uint32) nvml.Return {
		return nvml.SUCCESS
	}

	s.ShutdownFunc = func() nvml.Return {
		return nvml.SUCCESS
	}

	s.ErrorStringFunc = func(r nvml.Return) string {
		return nvml.ErrorString(r)
	}

	s.SystemGetDriverVersionFunc = func() (string, nvml.Return) {
		return s.DriverVersion, nvml.SUCCESS
	}

	s.SystemGetNVMLVersionFunc = func() (string, nvml.Return) {
		return s.NvmlVersion, nvml.SUCCESS
	}

	s.SystemGetCudaDriverVersionFunc = func() (int, nvml.Return) {
		return s.CudaDriverVersion, nvml.SUCCESS
	}

	s.SystemGetCudaDriverVersion_v2Func = func() (int, nvml.Return) {
		return s.CudaDriverVersion, nvml.SUCCESS
	}

	s.DeviceGetCountFunc = func() (int, nvml.Return) {
		return len(s.Devices), nvml.SUCCESS
	}

	s.DeviceGetHandleByIndexFunc = func(index int) (nvml.Device, nvml.Return) {
		if index < 0 || index >= len(s.Devices) {
			return nil, nvml.ERROR_INVALID_ARGUMENT
		}
		return s.Devices[index], nvml.SUCCESS
	}

	s.DeviceGetHandleByUUIDFunc = func(uuid string) (nvml.Device, nvml.Return) {
		for _, d := range s.Devices {
			if uuid == d.(*Device).UUID {
				return d, nvml.SUCCESS
			}
		}
		return nil, nvml.ERROR_NOT_FOUND
	}

	s.DeviceGetHandleBySerialFunc = func(serial string) (nvml.Device, nvml.Return) {
		for _, d := range s.Devices {
			if serial == d.(*Device).Serial {
				return d, nvml.SUCCESS
			}
		}
		return nil, nvml.ERROR_NOT_FOUND
	}

	s.DeviceGetHandleByPciBusIdFunc = func(pciBusId string) (nvml.Device, nvml.Return) {
		for _, d := range s.Devices {
			if pciBusId == d.(*Device).PciBusID {
				return d, nvml.SUCCESS
			}
		}
		return nil, nvml.ERROR_NOT_FOUND
	}

	s.EventSetCreateFunc = func() (nvml.EventSet, nvml.Return) {
		set := &mock.EventSet{
			WaitFunc: func(timeoutms uint32) (nvml.EventData, nvml.Return) {
				return nvml.EventData{}, nvml.ERROR_TIMEOUT
			},
			FreeFunc: func() nvml.Return {
				return nvml.SUCCESS
			},
		}
		return set, nvml.SUCCESS
	}
}

func (d *Device) setMockFuncs() {
	d.GetNameFunc = func() (string, nvml.Return) {
		return d.Name, nvml.SUCCESS
	}

	d.GetBrandFunc = func() (nvml.BrandType, nvml.Return) {
		return d.Brand, nvml.SUCCESS
	}

	d.GetUUIDFunc = func() (string, nvml.Return) {
		return d.UUID, nvml.SUCCESS
	}

	d.GetSerialFunc = func() (string, nvml.Return) {
		return d.Serial, nvml.SUCCESS
	}

	d.GetIndexFunc = func() (int, nvml.Return) {
		return d.Index, nvml.SUCCESS
	}

	d.GetMinorNumberFunc = func() (int, nvml.Return) {
		return d.Minor, nvml.SUCCESS
	}

	d.GetCudaComputeCapabilityFunc = func() (int, int, nvml.Return) {
		return d.CudaComputeCapMajor, d.CudaComputeCapMinor, nvml.SUCCESS
	}

	d.GetMemoryInfoFunc = func() (nvml.Memory, nvml.Return) {
		d.RLock()
		defer d.RUnlock()
		return d.Memory, nvml.SUCCESS
	}

	d.GetPciInfoFunc = func() (nvml.PciInfo, nvml.Return) {
		p := nvml.NewPciInfoFromBusID(d.PciBusID)
		p.Bus = uint32(d.Index)
		p.PciDeviceId = 0x20B010DE
		p.PciSubSystemId = 0x134F10DE
		return p, nvml.SUCCESS
	}

	d.GetUtilizationRatesFunc = func() (nvml.Utilization, nvml.Return) {
		return nvml.Utilization{}, nvml.SUCCESS
	}

	d.GetComputeRunningProcessesFunc = func() ([]nvml.ProcessInfo, nvml.Return) {
		return []nvml.ProcessInfo{}, nvml.SUCCESS
	}

	d.GetGraphicsRunningProcessesFunc = func() ([]nvml.ProcessInfo, nvml.Return) {
		return []nvml.ProcessInfo{}, nvml.SUCCESS
	}

	d.GetAccountingModeFunc = func() (nvml.EnableState, nvml.Return) {
		return nvml.FEATURE_ENABLED, nvml.SUCCESS
	}

	d.GetAccountingPidsFunc = func() ([]int, nvml.Return) {
		d.RLock()
		defer d.RUnlock()
		var pids []int
		for pid := range d.AccountingStatsByPid {
			pids = append(pids, int(pid))
		}
		sort.Ints(pids)
		return pids, nvml.SUCCESS
	}

	d.GetAccountingStatsFunc = func(pid uint32) (nvml.AccountingStats, nvml.Return) {
		d.RLock()
		defer d.RUnlock()
		stats, ok := d.AccountingStatsByPid[pid]
		if !ok {
			return nvml.AccountingStats{}, nvml.ERROR_NOT_FOUND
		}
		return stats, nvml.SUCCESS
	}

	d.GetSupportedEventTypesFunc = func() (uint64, nvml.Return) {
		return nvml.EventTypeAll, nvml.SUCCESS
	}

	d.RegisterEventsFunc = func(eventTypes uint64, set nvml.EventSet) nvml.Return {
		return nvml.SUCCESS
	}
}
