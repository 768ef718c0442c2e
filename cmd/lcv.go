/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/lcv/internal/logging"
	"github.com/Paintersrp/lcv/internal/state"
	"github.com/Paintersrp/lcv/pkg/cmd/root"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := &state.Options{}
	l := state.NewLazy(opts)

	if err := run(ctx, root.NewCmdRoot(l, opts), l); err != nil {
		stop()
		os.Exit(1)
	}
}

// run executes rootCmd and then closes c. A command failure is logged
// before c is closed so it reaches the log file.
func run(ctx context.Context, rootCmd *cobra.Command, c io.Closer) error {
	execErr := rootCmd.ExecuteContext(ctx)
	if execErr != nil {
		logging.Error("command failed", logging.Err(execErr))
	}
	if err := c.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to close:", err)
	}
	return execErr
}
