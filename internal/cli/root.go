/*
 * Root - entry point of the hdns command tree.
 *
 * Copyright 2026 The hetzner-dns-api authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hetzner-dns-api/pkg/hetzner"
)

// app carries the API client shared by the subcommands. The client is built
// once, from the environment, before the first subcommand runs.
type app struct {
	client *hetzner.Client
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logError(err)
		return 1
	}
	return 0
}

// NewRootCmd builds the hdns command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "hdns",
		Short: "A command line interface to the Hetzner DNS API",
		Long: "hdns manages zones and records through the Hetzner DNS API.\n" +
			"The API key is read from the HETZNER_API_KEY environment variable.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.connect()
		},
	}

	registerZoneCmd(a, rootCmd)
	registerRecordCmd(a, rootCmd)

	return rootCmd
}

// connect builds the API client from the environment configuration.
func (a *app) connect() error {
	cfg, err := NewConfig()
	if err != nil {
		return err
	}
	opts := []hetzner.ClientOption{
		hetzner.WithDebug(cfg.Debug),
	}
	if cfg.APIURL != "" {
		opts = append(opts, hetzner.WithEndpoint(cfg.APIURL))
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	a.client = hetzner.NewClient(cfg.APIKey, opts...)
	return nil
}

// confirm asks the user before a destructive operation. The yes flag skips
// the question.
func confirm(cmd *cobra.Command, yes bool, prompt string) (bool, error) {
	if yes {
		return true, nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// logError renders an error before exit. Authorization and lookup failures
// get dedicated messages; everything else is reported as-is.
func logError(err error) {
	var authErr *hetzner.AuthorizationError
	var notFoundErr *hetzner.NotFoundError
	switch {
	case errors.As(err, &authErr):
		log.Error("authorization rejected: check HETZNER_API_KEY")
	case errors.As(err, &notFoundErr):
		log.Error("the requested object does not exist")
	default:
		log.Error(err)
	}
}
