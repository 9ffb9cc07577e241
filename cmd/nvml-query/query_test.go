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
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/go-nvml-wrapper/pkg/nvml"
	"github.com/NVIDIA/go-nvml-wrapper/pkg/nvml/mock/dgxa100"
)

func TestBuildReportAllDevices(t *testing.T) {
	server := dgxa100.New()

	report, err := buildReport(server, &Flags{Index: -1})
	require.NoError(t, err)

	require.Equal(t, "550.54.15", report.DriverVersion)
	require.Equal(t, "12.550.54.15", report.NVMLVersion)
	require.Equal(t, 12040, report.CudaDriverVersion)
	require.Len(t, report.Devices, 8)

	for i, d := range report.Devices {
		require.Equal(t, i, d.Index)
		require.Equal(t, "Mock NVIDIA A100-SXM4-40GB", d.Name)
		require.NotEmpty(t, d.UUID)
		require.Equal(t, uint64(42949672960), d.MemoryTotal)
	}
}

func TestBuildReportByIndex(t *testing.T) {
	server := dgxa100.New()

	report, err := buildReport(server, &Flags{Index: 3})
	require.NoError(t, err)
	require.Len(t, report.Devices, 1)
	require.Equal(t, 3, report.Devices[0].Index)
	require.Equal(t, "0000:03:00.0", report.Devices[0].PciBusID)
}

func TestBuildReportByUUID(t *testing.T) {
	server := dgxa100.New()
	uuid := server.Devices[5].(*dgxa100.Device).UUID

	report, err := buildReport(server, &Flags{Index: -1, UUID: uuid})
	require.NoError(t, err)
	require.Len(t, report.Devices, 1)
	require.Equal(t, uuid, report.Devices[0].UUID)
}

func TestBuildReportSelectionErrors(t *testing.T) {
	server := dgxa100.New()

	testCases := []struct {
		description string
		flags       Flags
	}{
		{
			description: "index out of range",
			flags:       Flags{Index: 8},
		},
		{
			description: "unknown uuid",
			flags:       Flags{Index: -1, UUID: "GPU-does-not-exist"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			_, err := buildReport(server, &tc.flags)
			require.Error(t, err)
		})
	}
}

func TestBuildReportAccounting(t *testing.T) {
	server := dgxa100.New()
	device := server.Devices[0].(*dgxa100.Device)

	device.Lock()
	device.AccountingStatsByPid[1234] = nvml.AccountingStats{
		GpuUtilization: 75,
		MaxMemoryUsage: 1073741824,
		Time:           5000,
		IsRunning:      1,
	}
	device.AccountingStatsByPid[5678] = nvml.AccountingStats{
		GpuUtilization: ^uint32(0),
		MaxMemoryUsage: ^uint64(0),
		Time:           ^uint64(0),
		IsRunning:      0,
	}
	device.Unlock()

	report, err := buildReport(server, &Flags{Index: 0})
	require.NoError(t, err)
	require.Len(t, report.Devices, 1)
	require.Len(t, report.Devices[0].Accounting, 2)

	sampled := report.Devices[0].Accounting[0]
	require.Equal(t, 1234, sampled.Pid)
	require.True(t, sampled.IsRunning)
	require.NotNil(t, sampled.GpuUtilization)
	require.Equal(t, uint32(75), *sampled.GpuUtilization)
	require.NotNil(t, sampled.MaxMemoryUsage)
	require.Equal(t, uint64(1073741824), *sampled.MaxMemoryUsage)
	require.NotNil(t, sampled.Time)
	require.Equal(t, uint64(5000), *sampled.Time)

	// Counters holding the not-available sentinel are dropped from the
	// report instead of surfacing as huge numbers.
	unsampled := report.Devices[0].Accounting[1]
	require.Equal(t, 5678, unsampled.Pid)
	require.False(t, unsampled.IsRunning)
	require.Nil(t, unsampled.GpuUtilization)
	require.Nil(t, unsampled.MaxMemoryUsage)
	require.Nil(t, unsampled.Time)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	server := dgxa100.New()

	report, err := buildReport(server, &Flags{Index: 0})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.writeJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, *report, decoded)
}

func TestWriteTable(t *testing.T) {
	report := &Report{
		DriverVersion:     "550.54.15",
		NVMLVersion:       "12.550.54.15",
		CudaDriverVersion: 12040,
		Devices: []DeviceReport{
			{
				Index:       0,
				Name:        "Mock NVIDIA A100-SXM4-40GB",
				UUID:        "GPU-00000000-0000-0000-0000-000000000000",
				PciBusID:    "0000:00:00.0",
				MemoryTotal: 42949672960,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.writeTable(&buf))
	require.Contains(t, buf.String(), "Driver Version: 550.54.15")
	require.Contains(t, buf.String(), "CUDA Version:   12.4")
	require.Contains(t, buf.String(), "Mock NVIDIA A100-SXM4-40GB")
}

var _ nvml.Interface = (*dgxa100.Server)(nil)
