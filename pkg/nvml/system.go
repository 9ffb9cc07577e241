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

// nvml.SystemGetDriverVersion()
func SystemGetDriverVersion() (string, Return) {
	return libnvml.SystemGetDriverVersion()
}

func (l *library) SystemGetDriverVersion() (string, Return) {
	if !l.isLoaded() {
		return "", ERROR_UNINITIALIZED
	}
	version := make([]byte, SYSTEM_DRIVER_VERSION_BUFFER_SIZE)
	ret := nvmlSystemGetDriverVersion(&version[0], SYSTEM_DRIVER_VERSION_BUFFER_SIZE)
	return string(version[:clen(version)]), ret
}

// nvml.SystemGetNVMLVersion()
func SystemGetNVMLVersion() (string, Return) {
	return libnvml.SystemGetNVMLVersion()
}

func (l *library) SystemGetNVMLVersion() (string, Return) {
	if !l.isLoaded() {
		return "", ERROR_UNINITIALIZED
	}
	version := make([]byte, SYSTEM_NVML_VERSION_BUFFER_SIZE)
	ret := nvmlSystemGetNVMLVersion(&version[0], SYSTEM_NVML_VERSION_BUFFER_SIZE)
	return string(version[:clen(version)]), ret
}

// nvml.SystemGetCudaDriverVersion()
func SystemGetCudaDriverVersion() (int, Return) {
	return libnvml.SystemGetCudaDriverVersion()
}

func (l *library) SystemGetCudaDriverVersion() (int, Return) {
	if !l.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var cudaDriverVersion int32
	ret := nvmlSystemGetCudaDriverVersion(&cudaDriverVersion)
	return int(cudaDriverVersion), ret
}

// nvml.SystemGetCudaDriverVersion_v2()
func SystemGetCudaDriverVersion_v2() (int, Return) {
	return libnvml.SystemGetCudaDriverVersion_v2()
}

func (l *library) SystemGetCudaDriverVersion_v2() (int, Return) {
	if !l.isLoaded() {
		return 0, ERROR_UNINITIALIZED
	}
	var cudaDriverVersion int32
	ret := nvmlSystemGetCudaDriverVersion_v2(&cudaDriverVersion)
	return int(cudaDriverVersion), ret
}

// nvml.SystemGetProcessName()
func SystemGetProcessName(pid int) (string, Return) {
	return libnvml.SystemGetProcessName(pid)
}

func (l *library) SystemGetProcessName(pid int) (string, Return) {
	if !l.isLoaded() {
		return "", ERROR_UNINITIALIZED
	}
	name := make([]byte, SYSTEM_PROCESS_NAME_BUFFER_SIZE)
	ret := nvmlSystemGetProcessName(uint32(pid), &name[0], SYSTEM_PROCESS_NAME_BUFFER_SIZE)
	return string(name[:clen(name)]), ret
}
