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

package dgxa100

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/go-nvml-wrapper/pkg/nvml"
)

func TestServerDevices(t *testing.T) {
	server := New()

	count, ret := server.DeviceGetCount()
	require.Equal(t, nvml.SUCCESS, ret)
	require.Equal(t, 8, count)

	seen := make(map[string]bool)
	for i := 0; i < count; i++ {
		device, ret := server.DeviceGetHandleByIndex(i)
		require.Equal(t, nvml.SUCCESS, ret)

		index, ret := device.GetIndex()
		require.Equal(t, nvml.SUCCESS, ret)
		require.Equal(t, i, index)

		uuid, ret := device.GetUUID()
		require.Equal(t, nvml.SUCCESS, ret)
		require.False(t, seen[uuid], "duplicate uuid %v", uuid)
		seen[uuid] = true

		byUUID, ret := server.DeviceGetHandleByUUID(uuid)
		require.Equal(t, nvml.SUCCESS, ret)
		require.Equal(t, device, byUUID)
	}
}

func TestServerHandleLookupErrors(t *testing.T) {
	server := New()

	_, ret := server.DeviceGetHandleByIndex(-1)
	require.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)

	_, ret = server.DeviceGetHandleByIndex(8)
	require.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)

	_, ret = server.DeviceGetHandleByUUID("GPU-does-not-exist")
	require.Equal(t, nvml.ERROR_NOT_FOUND, ret)

	_, ret = server.DeviceGetHandleBySerial("does-not-exist")
	require.Equal(t, nvml.ERROR_NOT_FOUND, ret)

	_, ret = server.DeviceGetHandleByPciBusId("ffff:ff:00.0")
	require.Equal(t, nvml.ERROR_NOT_FOUND, ret)
}

func TestDevicePciInfo(t *testing.T) {
	server := New()

	device, ret := server.DeviceGetHandleByIndex(3)
	require.Equal(t, nvml.SUCCESS, ret)

	pci, ret := device.GetPciInfo()
	require.Equal(t, nvml.SUCCESS, ret)
	require.Equal(t, "0000:03:00.0", pci.BusIdString())
	require.Equal(t, uint32(3), pci.Bus)

	byBusId, ret := server.DeviceGetHandleByPciBusId(pci.BusIdString())
	require.Equal(t, nvml.SUCCESS, ret)
	require.Equal(t, device, byBusId)
}

func TestSystemQueries(t *testing.T) {
	server := New()

	driver, ret := server.SystemGetDriverVersion()
	require.Equal(t, nvml.SUCCESS, ret)
	require.Equal(t, "550.54.15", driver)

	version, ret := server.SystemGetNVMLVersion()
	require.Equal(t, nvml.SUCCESS, ret)
	require.Equal(t, "12.550.54.15", version)

	cuda, ret := server.SystemGetCudaDriverVersion()
	require.Equal(t, nvml.SUCCESS, ret)
	require.Equal(t, 12040, cuda)
}

func TestEventSetWaitTimesOut(t *testing.T) {
	server := New()

	set, ret := server.EventSetCreate()
	require.Equal(t, nvml.SUCCESS, ret)

	_, ret = set.Wait(100)
	require.Equal(t, nvml.ERROR_TIMEOUT, ret)

	require.Equal(t, nvml.SUCCESS, set.Free())
}

func TestDeviceAccountingStats(t *testing.T) {
	device := NewDevice(0)

	_, ret := device.GetAccountingStats(1234)
	require.Equal(t, nvml.ERROR_NOT_FOUND, ret)

	device.Lock()
	device.AccountingStatsByPid[1234] = nvml.AccountingStats{
		GpuUtilization: 85,
		IsRunning:      1,
	}
	device.Unlock()

	stats, ret := device.GetAccountingStats(1234)
	require.Equal(t, nvml.SUCCESS, ret)
	require.Equal(t, uint32(85), stats.GpuUtilization)
}