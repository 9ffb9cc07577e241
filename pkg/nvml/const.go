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

// Buffer sizes as declared in nvml.h.
const (
	DEVICE_INFOROM_VERSION_BUFFER_SIZE = 16
	DEVICE_UUID_BUFFER_SIZE            = 80
	DEVICE_UUID_V2_BUFFER_SIZE         = 96
	SYSTEM_DRIVER_VERSION_BUFFER_SIZE  = 80
	SYSTEM_NVML_VERSION_BUFFER_SIZE    = 80
	DEVICE_NAME_BUFFER_SIZE            = 64
	DEVICE_NAME_V2_BUFFER_SIZE         = 96
	DEVICE_SERIAL_BUFFER_SIZE          = 30
	DEVICE_VBIOS_VERSION_BUFFER_SIZE   = 32
	DEVICE_PCI_BUS_ID_BUFFER_SIZE      = 32
	DEVICE_PCI_BUS_ID_BUFFER_V2_SIZE   = 16
	SYSTEM_PROCESS_NAME_BUFFER_SIZE    = 256
)

// VALUE_NOT_AVAILABLE marks accounting statistics fields the driver could
// not collect.
const VALUE_NOT_AVAILABLE = -1

// Init flags as declared in nvml.h.
const (
	INIT_FLAG_NO_GPUS   = 1
	INIT_FLAG_NO_ATTACH = 2
)

// EnableState as declared in nvml.h.
type EnableState int32

const (
	FEATURE_DISABLED EnableState = 0
	FEATURE_ENABLED  EnableState = 1
)

// BrandType as declared in nvml.h.
type BrandType int32

const (
	BRAND_UNKNOWN BrandType = 0
	BRAND_QUADRO  BrandType = 1
	BRAND_TESLA   BrandType = 2
	BRAND_NVS     BrandType = 3
	BRAND_GRID    BrandType = 4
	BRAND_GEFORCE BrandType = 5
	BRAND_TITAN   BrandType = 6
	BRAND_COUNT   BrandType = 7
)

// TemperatureSensors as declared in nvml.h.
type TemperatureSensors int32

const (
	TEMPERATURE_GPU   TemperatureSensors = 0
	TEMPERATURE_COUNT TemperatureSensors = 1
)

// TemperatureThresholds as declared in nvml.h.
type TemperatureThresholds int32

const (
	TEMPERATURE_THRESHOLD_SHUTDOWN TemperatureThresholds = 0
	TEMPERATURE_THRESHOLD_SLOWDOWN TemperatureThresholds = 1
	TEMPERATURE_THRESHOLD_COUNT    TemperatureThresholds = 2
)

// ClockType as declared in nvml.h.
type ClockType int32

const (
	CLOCK_GRAPHICS ClockType = 0
	CLOCK_SM       ClockType = 1
	CLOCK_MEM      ClockType = 2
	CLOCK_VIDEO    ClockType = 3
	CLOCK_COUNT    ClockType = 4
)

// ComputeMode as declared in nvml.h.
type ComputeMode int32

const (
	COMPUTEMODE_DEFAULT           ComputeMode = 0
	COMPUTEMODE_EXCLUSIVE_THREAD  ComputeMode = 1
	COMPUTEMODE_PROHIBITED        ComputeMode = 2
	COMPUTEMODE_EXCLUSIVE_PROCESS ComputeMode = 3
	COMPUTEMODE_COUNT             ComputeMode = 4
)

// Pstates as declared in nvml.h.
type Pstates int32

const (
	PSTATE_0       Pstates = 0
	PSTATE_1       Pstates = 1
	PSTATE_2       Pstates = 2
	PSTATE_3       Pstates = 3
	PSTATE_4       Pstates = 4
	PSTATE_5       Pstates = 5
	PSTATE_6       Pstates = 6
	PSTATE_7       Pstates = 7
	PSTATE_8       Pstates = 8
	PSTATE_9       Pstates = 9
	PSTATE_10      Pstates = 10
	PSTATE_11      Pstates = 11
	PSTATE_12      Pstates = 12
	PSTATE_13      Pstates = 13
	PSTATE_14      Pstates = 14
	PSTATE_15      Pstates = 15
	PSTATE_UNKNOWN Pstates = 32
)

// InforomObject as declared in nvml.h.
type InforomObject int32

const (
	INFOROM_OEM   InforomObject = 0
	INFOROM_ECC   InforomObject = 1
	INFOROM_POWER InforomObject = 2
	INFOROM_COUNT InforomObject = 3
)

// MemoryLocation as declared in nvml.h.
type MemoryLocation int32

const (
	MEMORY_LOCATION_L1_CACHE       MemoryLocation = 0
	MEMORY_LOCATION_L2_CACHE       MemoryLocation = 1
	MEMORY_LOCATION_DEVICE_MEMORY  MemoryLocation = 2
	MEMORY_LOCATION_REGISTER_FILE  MemoryLocation = 3
	MEMORY_LOCATION_TEXTURE_MEMORY MemoryLocation = 4
	MEMORY_LOCATION_COUNT          MemoryLocation = 5
)

// MemoryErrorType as declared in nvml.h.
type MemoryErrorType int32

const (
	MEMORY_ERROR_TYPE_CORRECTED   MemoryErrorType = 0
	MEMORY_ERROR_TYPE_UNCORRECTED MemoryErrorType = 1
	MEMORY_ERROR_TYPE_COUNT       MemoryErrorType = 2
)

// EccCounterType as declared in nvml.h.
type EccCounterType int32

const (
	VOLATILE_ECC           EccCounterType = 0
	AGGREGATE_ECC          EccCounterType = 1
	ECC_COUNTER_TYPE_COUNT EccCounterType = 2
)

// GpuTopologyLevel as declared in nvml.h.
type GpuTopologyLevel int32

const (
	TOPOLOGY_INTERNAL   GpuTopologyLevel = 0
	TOPOLOGY_SINGLE     GpuTopologyLevel = 10
	TOPOLOGY_MULTIPLE   GpuTopologyLevel = 20
	TOPOLOGY_HOSTBRIDGE GpuTopologyLevel = 30
	TOPOLOGY_NODE       GpuTopologyLevel = 40
	TOPOLOGY_SYSTEM     GpuTopologyLevel = 50
)

// BridgeChipType as declared in nvml.h.
type BridgeChipType int32

const (
	BRIDGE_CHIP_PLX  BridgeChipType = 0
	BRIDGE_CHIP_BRO4 BridgeChipType = 1
)

// MAX_PHYSICAL_BRIDGE is the maximum number of bridge chips on a board.
const MAX_PHYSICAL_BRIDGE = 128

// EncoderType as declared in nvml.h.
type EncoderType int32

const (
	ENCODER_QUERY_H264 EncoderType = 0
	ENCODER_QUERY_HEVC EncoderType = 1
)

// SamplingType as declared in nvml.h.
type SamplingType int32

const (
	TOTAL_POWER_SAMPLES        SamplingType = 0
	GPU_UTILIZATION_SAMPLES    SamplingType = 1
	MEMORY_UTILIZATION_SAMPLES SamplingType = 2
	ENC_UTILIZATION_SAMPLES    SamplingType = 3
	DEC_UTILIZATION_SAMPLES    SamplingType = 4
	PROCESSOR_CLK_SAMPLES      SamplingType = 5
	MEMORY_CLK_SAMPLES         SamplingType = 6
	SAMPLINGTYPE_COUNT         SamplingType = 7
)

// ValueType as declared in nvml.h.
type ValueType int32

const (
	VALUE_TYPE_DOUBLE             ValueType = 0
	VALUE_TYPE_UNSIGNED_INT       ValueType = 1
	VALUE_TYPE_UNSIGNED_LONG      ValueType = 2
	VALUE_TYPE_UNSIGNED_LONG_LONG ValueType = 3
	VALUE_TYPE_SIGNED_LONG_LONG   ValueType = 4
	VALUE_TYPE_COUNT              ValueType = 5
)

// PerfPolicyType as declared in nvml.h.
type PerfPolicyType int32

const (
	PERF_POLICY_POWER             PerfPolicyType = 0
	PERF_POLICY_THERMAL           PerfPolicyType = 1
	PERF_POLICY_SYNC_BOOST        PerfPolicyType = 2
	PERF_POLICY_BOARD_LIMIT       PerfPolicyType = 3
	PERF_POLICY_LOW_UTILIZATION   PerfPolicyType = 4
	PERF_POLICY_RELIABILITY       PerfPolicyType = 5
	PERF_POLICY_TOTAL_APP_CLOCKS  PerfPolicyType = 10
	PERF_POLICY_TOTAL_BASE_CLOCKS PerfPolicyType = 11
	PERF_POLICY_COUNT             PerfPolicyType = 12
)

// NVLINK_MAX_LINKS is the maximum number of NvLink links per device.
const NVLINK_MAX_LINKS = 6

// NvLinkCapability as declared in nvml.h.
type NvLinkCapability int32

const (
	NVLINK_CAP_P2P_SUPPORTED  NvLinkCapability = 0
	NVLINK_CAP_SYSMEM_ACCESS  NvLinkCapability = 1
	NVLINK_CAP_P2P_ATOMICS    NvLinkCapability = 2
	NVLINK_CAP_SYSMEM_ATOMICS NvLinkCapability = 3
	NVLINK_CAP_SLI_BRIDGE     NvLinkCapability = 4
	NVLINK_CAP_VALID          NvLinkCapability = 5
	NVLINK_CAP_COUNT          NvLinkCapability = 6
)

// NvLinkErrorCounter as declared in nvml.h.
type NvLinkErrorCounter int32

const (
	NVLINK_ERROR_DL_REPLAY   NvLinkErrorCounter = 0
	NVLINK_ERROR_DL_RECOVERY NvLinkErrorCounter = 1
	NVLINK_ERROR_DL_CRC_FLIT NvLinkErrorCounter = 2
	NVLINK_ERROR_DL_CRC_DATA NvLinkErrorCounter = 3
	NVLINK_ERROR_COUNT       NvLinkErrorCounter = 4
)

// NvLinkUtilizationCountUnits as declared in nvml.h.
type NvLinkUtilizationCountUnits int32

const (
	NVLINK_COUNTER_UNIT_CYCLES  NvLinkUtilizationCountUnits = 0
	NVLINK_COUNTER_UNIT_PACKETS NvLinkUtilizationCountUnits = 1
	NVLINK_COUNTER_UNIT_BYTES   NvLinkUtilizationCountUnits = 2
	NVLINK_COUNTER_UNIT_COUNT   NvLinkUtilizationCountUnits = 3
)

// NvLinkUtilizationCountPktTypes as declared in nvml.h.
// The values form a bitmask and may be combined.
type NvLinkUtilizationCountPktTypes int32

const (
	NVLINK_COUNTER_PKTFILTER_NOP        NvLinkUtilizationCountPktTypes = 0x1
	NVLINK_COUNTER_PKTFILTER_READ       NvLinkUtilizationCountPktTypes = 0x2
	NVLINK_COUNTER_PKTFILTER_WRITE      NvLinkUtilizationCountPktTypes = 0x4
	NVLINK_COUNTER_PKTFILTER_RATOM      NvLinkUtilizationCountPktTypes = 0x8
	NVLINK_COUNTER_PKTFILTER_NRATOM     NvLinkUtilizationCountPktTypes = 0x10
	NVLINK_COUNTER_PKTFILTER_FLUSH      NvLinkUtilizationCountPktTypes = 0x20
	NVLINK_COUNTER_PKTFILTER_RESPDATA   NvLinkUtilizationCountPktTypes = 0x40
	NVLINK_COUNTER_PKTFILTER_RESPNODATA NvLinkUtilizationCountPktTypes = 0x80
	NVLINK_COUNTER_PKTFILTER_ALL        NvLinkUtilizationCountPktTypes = 0xFF
)

// Event types as declared in nvml.h.
const (
	EventTypeNone              uint64 = 0x0000000000000000
	EventTypeSingleBitEccError uint64 = 0x0000000000000001
	EventTypeDoubleBitEccError uint64 = 0x0000000000000002
	EventTypePState            uint64 = 0x0000000000000004
	EventTypeXidCriticalError  uint64 = 0x0000000000000008
	EventTypeClock             uint64 = 0x0000000000000010
	EventTypeAll                      = EventTypeNone |
		EventTypeSingleBitEccError |
		EventTypeDoubleBitEccError |
		EventTypePState |
		EventTypeXidCriticalError |
		EventTypeClock
)
