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
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/NVIDIA/go-nvml-wrapper/pkg/nvml"
)

var version string // This should be set at build time to indicate the actual version

// Flags holds configurable settings as set via the CLI
type Flags struct {
	LibraryPath string
	Index       int
	UUID        string
	JSON        bool
}

func main() {
	var flags Flags

	c := cli.NewApp()
	c.Name = "nvml-query"
	c.Usage = "query GPU system and device information through the management library"
	c.Version = version
	c.Action = func(ctx *cli.Context) error {
		return run(ctx, &flags)
	}

	c.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "library-path",
			Usage:       "the path of the management library to load (defaults to the library in the ld search path)",
			Destination: &flags.LibraryPath,
			EnvVars:     []string{"NVML_LIBRARY_PATH"},
		},
		&cli.IntFlag{
			Name:        "index",
			Value:       -1,
			Usage:       "only query the device with the specified index",
			Destination: &flags.Index,
			EnvVars:     []string{"NVML_QUERY_INDEX"},
		},
		&cli.StringFlag{
			Name:        "uuid",
			Usage:       "only query the device with the specified UUID",
			Destination: &flags.UUID,
			EnvVars:     []string{"NVML_QUERY_UUID"},
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "output as JSON instead of a table",
			Destination: &flags.JSON,
			EnvVars:     []string{"NVML_QUERY_JSON"},
		},
	}

	err := c.Run(os.Args)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Errorf("Error: %v", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context, flags *Flags) error {
	var opts []nvml.LibraryOption
	if flags.LibraryPath != "" {
		opts = append(opts, nvml.WithLibraryPath(flags.LibraryPath))
	}
	nvmllib := nvml.New(opts...)

	ret := nvmllib.Init()
	if ret != nvml.SUCCESS {
		return fmt.Errorf("failed to initialize the management library: %v", ret)
	}
	defer func() {
		ret := nvmllib.Shutdown()
		if ret != nvml.SUCCESS {
			log.Errorf("Error shutting down the management library: %v", ret)
		}
	}()

	report, err := buildReport(nvmllib, flags)
	if err != nil {
		return err
	}

	if flags.JSON {
		return report.writeJSON(os.Stdout)
	}
	return report.writeTable(os.Stdout)
}
