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

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"

	"github.com/NVIDIA/go-nvml-wrapper/pkg/nvml"
)

// Report holds the queried system and device information.
type Report struct {
	DriverVersion     string         `json:"driverVersion"`
	NVMLVersion       string         `json:"nvmlVersion"`
	CudaDriverVersion int            `json:"cudaDriverVersion"`
	Devices           []DeviceReport `json:"devices"`
}

// DeviceReport holds the queried information for a single device.
type DeviceReport struct {
	Index       int                `json:"index"`
	Name        string             `json:"name"`
	UUID        string             `json:"uuid"`
	PciBusID    string             `json:"pciBusId"`
	MemoryTotal uint64             `json:"memoryTotal"`
	MemoryUsed  uint64             `json:"memoryUsed"`
	Accounting  []AccountingReport `json:"accounting,omitempty"`
}

// AccountingReport holds the accounting stats for one tracked process.
// Counters the driver did not sample are omitted rather than reported as
// the not-available sentinel.
type AccountingReport struct {
	Pid            int     `json:"pid"`
	GpuUtilization *uint32 `json:"gpuUtilization,omitempty"`
	MaxMemoryUsage *uint64 `json:"maxMemoryUsage,omitempty"`
	Time           *uint64 `json:"time,omitempty"`
	IsRunning      bool    `json:"isRunning"`
}

// buildReport queries system information and the selected devices. Fields
// that the device or driver does not support are left at their zero value
// rather than failing the whole query.
func buildReport(nvmllib nvml.Interface, flags *Flags) (*Report, error) {
	report := &Report{}

	driver, ret := nvmllib.SystemGetDriverVersion()
	if ret != nvml.SUCCESS {
		return nil, fmt.Errorf("failed to get driver version: %v", ret)
	}
	report.DriverVersion = driver

	version, ret := nvmllib.SystemGetNVMLVersion()
	if ret != nvml.SUCCESS {
		return nil, fmt.Errorf("failed to get management library version: %v", ret)
	}
	report.NVMLVersion = version

	cuda, ret := nvmllib.SystemGetCudaDriverVersion()
	if ret != nvml.SUCCESS {
		log.Debugf("CUDA driver version unavailable: %v", ret)
	}
	report.CudaDriverVersion = cuda

	devices, err := selectDevices(nvmllib, flags)
	if err != nil {
		return nil, err
	}

	for _, device := range devices {
		report.Devices = append(report.Devices, queryDevice(device))
	}

	return report, nil
}

// selectDevices resolves the device selection flags to a set of handles.
// With no selection flags set, all devices in the system are returned.
func selectDevices(nvmllib nvml.Interface, flags *Flags) ([]nvml.Device, error) {
	if flags.UUID != "" {
		device, ret := nvmllib.DeviceGetHandleByUUID(flags.UUID)
		if ret != nvml.SUCCESS {
			return nil, fmt.Errorf("failed to get device with UUID %v: %v", flags.UUID, ret)
		}
		return []nvml.Device{device}, nil
	}

	if flags.Index >= 0 {
		device, ret := nvmllib.DeviceGetHandleByIndex(flags.Index)
		if ret != nvml.SUCCESS {
			return nil, fmt.Errorf("failed to get device with index %v: %v", flags.Index, ret)
		}
		return []nvml.Device{device}, nil
	}

	count, ret := nvmllib.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return nil, fmt.Errorf("failed to get device count: %v", ret)
	}

	var devices []nvml.Device
	for i := 0; i < count; i++ {
		device, ret := nvmllib.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			return nil, fmt.Errorf("failed to get device with index %v: %v", i, ret)
		}
		devices = append(devices, device)
	}
	return devices, nil
}

func queryDevice(device nvml.Device) DeviceReport {
	var report DeviceReport

	index, ret := device.GetIndex()
	if ret == nvml.SUCCESS {
		report.Index = index
	}

	name, ret := device.GetName()
	if ret == nvml.SUCCESS {
		report.Name = name
	}

	uuid, ret := device.GetUUID()
	if ret == nvml.SUCCESS {
		report.UUID = uuid
	}

	pci, ret := device.GetPciInfo()
	if ret == nvml.SUCCESS {
		report.PciBusID = pci.BusIdString()
	}

	memory, ret := device.GetMemoryInfo()
	if ret == nvml.SUCCESS {
		report.MemoryTotal = memory.Total
		report.MemoryUsed = memory.Used
	}

	report.Accounting = queryAccounting(device)

	return report
}

// queryAccounting collects per-process accounting stats when accounting
// mode is enabled on the device. Counters holding the not-available
// sentinel are skipped.
func queryAccounting(device nvml.Device) []AccountingReport {
	mode, ret := device.GetAccountingMode()
	if ret != nvml.SUCCESS || mode != nvml.FEATURE_ENABLED {
		return nil
	}

	pids, ret := device.GetAccountingPids()
	if ret != nvml.SUCCESS {
		log.Debugf("accounting pids unavailable: %v", ret)
		return nil
	}

	var reports []AccountingReport
	for _, pid := range pids {
		stats, ret := device.GetAccountingStats(uint32(pid))
		if ret != nvml.SUCCESS {
			continue
		}
		report := AccountingReport{
			Pid:       pid,
			IsRunning: stats.IsRunning == 1,
		}
		if nvml.ValueAvailable(stats.GpuUtilization) {
			report.GpuUtilization = &stats.GpuUtilization
		}
		if nvml.ValueAvailable(stats.MaxMemoryUsage) {
			report.MaxMemoryUsage = &stats.MaxMemoryUsage
		}
		if nvml.ValueAvailable(stats.Time) {
			report.Time = &stats.Time
		}
		reports = append(reports, report)
	}
	return reports
}

func (r *Report) writeJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

func (r *Report) writeTable(w io.Writer) error {
	fmt.Fprintf(w, "Driver Version: %s\n", r.DriverVersion)
	fmt.Fprintf(w, "NVML Version:   %s\n", r.NVMLVersion)
	if r.CudaDriverVersion != 0 {
		fmt.Fprintf(w, "CUDA Version:   %d.%d\n", r.CudaDriverVersion/1000, (r.CudaDriverVersion%1000)/10)
	}
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Index", "Name", "UUID", "Bus ID", "Memory (used/total)"})
	table.SetAutoFormatHeaders(false)
	for _, d := range r.Devices {
		table.Append([]string{
			fmt.Sprintf("%d", d.Index),
			d.Name,
			d.UUID,
			d.PciBusID,
			fmt.Sprintf("%d MiB / %d MiB", d.MemoryUsed/(1024*1024), d.MemoryTotal/(1024*1024)),
		})
	}
	table.Render()
	return nil
}
