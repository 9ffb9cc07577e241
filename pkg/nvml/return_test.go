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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	testCases := []struct {
		description string
		ret         Return
		expected    string
	}{
		{
			description: "success",
			ret:         SUCCESS,
			expected:    "SUCCESS",
		},
		{
			description: "uninitialized",
			ret:         ERROR_UNINITIALIZED,
			expected:    "ERROR_UNINITIALIZED",
		},
		{
			description: "invalid argument",
			ret:         ERROR_INVALID_ARGUMENT,
			expected:    "ERROR_INVALID_ARGUMENT",
		},
		{
			description: "insufficient size",
			ret:         ERROR_INSUFFICIENT_SIZE,
			expected:    "ERROR_INSUFFICIENT_SIZE",
		},
		{
			description: "driver not loaded",
			ret:         ERROR_DRIVER_NOT_LOADED,
			expected:    "ERROR_DRIVER_NOT_LOADED",
		},
		{
			description: "timeout",
			ret:         ERROR_TIMEOUT,
			expected:    "ERROR_TIMEOUT",
		},
		{
			description: "library not found",
			ret:         ERROR_LIBRARY_NOT_FOUND,
			expected:    "ERROR_LIBRARY_NOT_FOUND",
		},
		{
			description: "unknown",
			ret:         ERROR_UNKNOWN,
			expected:    "ERROR_UNKNOWN",
		},
		{
			description: "out of range value",
			ret:         Return(1023),
			expected:    "unknown return value: 1023",
		},
		{
			description: "negative value",
			ret:         Return(-1),
			expected:    "unknown return value: -1",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			require.Equal(t, tc.expected, ErrorString(tc.ret))
			require.Equal(t, tc.expected, tc.ret.String())
			require.Equal(t, tc.expected, tc.ret.Error())
		})
	}
}

func TestAllDefinedReturnValuesHaveStrings(t *testing.T) {
	defined := []Return{
		SUCCESS,
		ERROR_UNINITIALIZED,
		ERROR_INVALID_ARGUMENT,
		ERROR_NOT_SUPPORTED,
		ERROR_NO_PERMISSION,
		ERROR_ALREADY_INITIALIZED,
		ERROR_NOT_FOUND,
		ERROR_INSUFFICIENT_SIZE,
		ERROR_INSUFFICIENT_POWER,
		ERROR_DRIVER_NOT_LOADED,
		ERROR_TIMEOUT,
		ERROR_IRQ_ISSUE,
		ERROR_LIBRARY_NOT_FOUND,
		ERROR_FUNCTION_NOT_FOUND,
		ERROR_CORRUPTED_INFOROM,
		ERROR_GPU_IS_LOST,
		ERROR_RESET_REQUIRED,
		ERROR_OPERATING_SYSTEM,
		ERROR_LIB_RM_VERSION_MISMATCH,
		ERROR_IN_USE,
		ERROR_MEMORY,
		ERROR_NO_DATA,
		ERROR_VGPU_ECC_NOT_SUPPORTED,
		ERROR_INSUFFICIENT_RESOURCES,
		ERROR_UNKNOWN,
	}
	for _, r := range defined {
		require.NotContains(t, r.String(), "unknown return value", "return value %d", int32(r))
	}
}
