//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fogfish/stamp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// decode prints timestamps with millisecond precision
const layout = "2006-01-02T15:04:05.000Z07:00"

type app struct {
	log   *logrus.Logger
	clock stamp.Chronos
	loc   *time.Location
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{log: logrus.New()}
	a.log.SetOutput(stderr)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd := &cobra.Command{
		Use:           "stamp",
		Short:         "Bit-packed timestamps and sequential identifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			tz, _ := cmd.Flags().GetString("tz")
			return a.setup(level, tz)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().String("tz", os.Getenv("CONFIG_STAMP_TZ"), "IANA time zone of calendar components (default local)")
	rootCmd.PersistentFlags().String("log-level", os.Getenv("STAMP_LOG_LEVEL"), "Log level: debug|info|warn|error")

	encodeCmd := &cobra.Command{
		Use:   "encode [RFC3339 time]",
		Short: "Pack timestamp into 64-bit integer (default now)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := a.clock.T()
			if len(args) == 1 {
				v, err := time.Parse(time.RFC3339Nano, args[0])
				if err != nil {
					return a.fail("encode", args[0], err)
				}
				t = v.In(a.loc)
			}

			v := stamp.EncodeTime(t)
			fmt.Fprintf(cmd.OutOrStdout(), "%d 0x%X\n", v, v)
			return nil
		},
	}
	rootCmd.AddCommand(encodeCmd)

	decodeCmd := &cobra.Command{
		Use:   "decode <value>",
		Short: "Unpack 64-bit integer (decimal or 0x hex) into timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseUint(args[0])
			if err != nil {
				return a.fail("decode", args[0], err)
			}

			t, err := stamp.DecodeTime(v, a.loc)
			if err != nil {
				return a.fail("decode", args[0], err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), t.Format(layout))
			return nil
		},
	}
	rootCmd.AddCommand(decodeCmd)

	idCmd := &cobra.Command{
		Use:   "id",
		Short: "Generate sequential 128-bit identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("count")
			sortable, _ := cmd.Flags().GetBool("sortable")

			for i := 0; i < n; i++ {
				id, err := stamp.NewID(a.clock)
				if err != nil {
					return a.fail("id", "", err)
				}

				if sortable {
					fmt.Fprintln(cmd.OutOrStdout(), id.Sortable())
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), id.String())
				}
			}
			return nil
		},
	}
	idCmd.Flags().IntP("count", "n", 1, "Number of identifiers")
	idCmd.Flags().Bool("sortable", false, "Print lexicographically sortable form")
	rootCmd.AddCommand(idCmd)

	codeCmd := &cobra.Command{
		Use:   "code",
		Short: "Generate coarse identity codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("count")
			for i := 0; i < n; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), stamp.NewCode(a.clock).String())
			}
			return nil
		},
	}
	codeCmd.Flags().IntP("count", "n", 1, "Number of codes")
	rootCmd.AddCommand(codeCmd)

	return rootCmd
}

func (a *app) setup(level, tz string) error {
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return a.fail("setup", level, err)
		}
		a.log.SetLevel(lvl)
	}

	a.loc = time.Local
	if tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return a.fail("setup", tz, err)
		}
		a.loc = loc
	}

	a.clock = stamp.NewClock(stamp.WithLocation(a.loc))
	a.log.WithField("tz", a.loc.String()).Debug("clock configured")
	return nil
}

func (a *app) fail(op, input string, err error) error {
	a.log.WithFields(logrus.Fields{
		"op":    op,
		"input": input,
	}).WithError(err).Error("command failed")
	return err
}

func parseUint(s string) (uint64, error) {
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}

	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, errors.Wrapf(stamp.ErrMalformed, "%q: %v", s, err)
	}
	return v, nil
}
