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
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestPciInfoBusIdRoundTrip(t *testing.T) {
	testCases := []struct {
		description string
		busID       string
		expected    string
	}{
		{
			description: "typical bus id",
			busID:       "0000:81:00.0",
			expected:    "0000:81:00.0",
		},
		{
			description: "extended domain",
			busID:       "00000000:3B:00.0",
			expected:    "00000000:3B:00.0",
		},
		{
			description: "empty",
			busID:       "",
			expected:    "",
		},
		{
			description: "input longer than the buffer is truncated",
			busID:       "00000000:00000000:00000000:00000000:00.0",
			expected:    "00000000:00000000:00000000:0000",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			p := NewPciInfoFromBusID(tc.busID)
			require.Equal(t, tc.expected, p.BusIdString())
		})
	}
}

func TestPciInfoLegacyBusId(t *testing.T) {
	p := NewPciInfoFromBusID("0000:81:00.0")
	legacy := make([]byte, len(p.BusIdLegacy))
	for i, c := range p.BusIdLegacy {
		legacy[i] = byte(c)
	}
	require.Equal(t, "0000:81:00.0", string(legacy[:clen(legacy)]))
}

func TestValueAccessors(t *testing.T) {
	var v Value

	*(*float64)(unsafe.Pointer(&v[0])) = 3.5
	require.Equal(t, 3.5, v.Double())

	*(*float64)(unsafe.Pointer(&v[0])) = math.MaxFloat64
	require.Equal(t, math.MaxFloat64, v.Double())

	*(*uint32)(unsafe.Pointer(&v[0])) = 42
	require.Equal(t, uint32(42), v.UnsignedInt())

	*(*uint64)(unsafe.Pointer(&v[0])) = math.MaxUint64
	require.Equal(t, uint64(math.MaxUint64), v.UnsignedLong())
	require.Equal(t, uint64(math.MaxUint64), v.UnsignedLongLong())

	*(*int64)(unsafe.Pointer(&v[0])) = -1234567890123
	require.Equal(t, int64(-1234567890123), v.SignedLongLong())
}

func TestProcessInfoPromotion(t *testing.T) {
	v1 := ProcessInfo_v1Slice{
		{Pid: 1234, UsedGpuMemory: 1 << 30},
		{Pid: 5678, UsedGpuMemory: 2 << 30},
	}

	infos := v1.ToProcessInfoSlice()
	require.Len(t, infos, 2)

	for i, info := range infos {
		require.Equal(t, v1[i].Pid, info.Pid)
		require.Equal(t, v1[i].UsedGpuMemory, info.UsedGpuMemory)
		require.Equal(t, uint32(0xFFFFFFFF), info.GpuInstanceId)
		require.Equal(t, uint32(0xFFFFFFFF), info.ComputeInstanceId)
	}
}

func TestProcessInfoPromotionEmpty(t *testing.T) {
	require.Empty(t, ProcessInfo_v1Slice{}.ToProcessInfoSlice())
}

func TestAccountingStatsValueNotAvailable(t *testing.T) {
	stats := AccountingStats{
		GpuUtilization: math.MaxUint32,
		MaxMemoryUsage: math.MaxUint64,
		Time:           12345,
		IsRunning:      1,
	}

	require.False(t, ValueAvailable(stats.GpuUtilization))
	require.False(t, ValueAvailable(stats.MaxMemoryUsage))
	require.True(t, ValueAvailable(stats.Time))
	require.True(t, ValueAvailable(stats.MemoryUtilization))
}

func TestClen(t *testing.T) {
	testCases := []struct {
		description string
		input       []byte
		expected    int
	}{
		{
			description: "empty",
			input:       []byte{},
			expected:    0,
		},
		{
			description: "no terminator",
			input:       []byte{'a', 'b', 'c'},
			expected:    3,
		},
		{
			description: "terminator in the middle",
			input:       []byte{'a', 'b', 0, 'c'},
			expected:    2,
		},
		{
			description: "leading terminator",
			input:       []byte{0, 'a'},
			expected:    0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			require.Equal(t, tc.expected, clen(tc.input))
		})
	}
}
