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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventSetCallsBeforeInitReturnUninitialized(t *testing.T) {
	require.False(t, libnvml.isLoaded())
	var set nvmlEventSet

	_, ret := set.Wait(1000)
	require.Equal(t, ERROR_UNINITIALIZED, ret)

	require.Equal(t, ERROR_UNINITIALIZED, set.Free())
	require.Equal(t, ERROR_UNINITIALIZED, DeviceRegisterEvents(nvmlDevice{}, EventTypeAll, set))
}

func TestEventDataConversionCarriesInstanceIds(t *testing.T) {
	raw := nvmlEventData{
		EventType:         EventTypeXidCriticalError,
		EventData:         79,
		GpuInstanceId:     3,
		ComputeInstanceId: 1,
	}

	data := raw.convert()
	require.Equal(t, EventTypeXidCriticalError, data.EventType)
	require.Equal(t, uint64(79), data.EventData)
	require.Equal(t, uint32(3), data.GpuInstanceId)
	require.Equal(t, uint32(1), data.ComputeInstanceId)
}

func TestEventSetWaitReturnsInstanceIds(t *testing.T) {
	mock := &dynamicLibraryMock{
		OpenFunc: func() error {
			return nil
		},
		CloseFunc: func() error {
			return nil
		},
		LookupFunc: func(symbol string) error {
			return errors.New("symbol not found")
		},
	}
	original := newDynamicLibrary
	newDynamicLibrary = func(path string, flags int) dynamicLibrary {
		return mock
	}
	defer func() {
		newDynamicLibrary = original
	}()

	require.NoError(t, libnvml.load())
	defer func() {
		require.NoError(t, libnvml.close())
	}()

	// Stand in for the driver entry point. The v2 symbol writes the two
	// instance id fields in addition to the v1 fields.
	originalWait := nvmlEventSetWait
	defer func() {
		nvmlEventSetWait = originalWait
	}()
	nvmlEventSetWait = func(set nvmlEventSet, data *nvmlEventData, timeoutms uint32) Return {
		data.EventType = EventTypeXidCriticalError
		data.EventData = 79
		data.GpuInstanceId = 2
		data.ComputeInstanceId = 1
		return SUCCESS
	}

	data, ret := nvmlEventSet{}.Wait(1000)
	require.Equal(t, SUCCESS, ret)
	require.Equal(t, EventTypeXidCriticalError, data.EventType)
	require.Equal(t, uint64(79), data.EventData)
	require.Equal(t, uint32(2), data.GpuInstanceId)
	require.Equal(t, uint32(1), data.ComputeInstanceId)
}
