/*
 * Record - record subcommands.
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
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"hetzner-dns-api/pkg/hetzner"
)

// registerRecordCmd attaches the record subcommands to the root command.
func registerRecordCmd(a *app, rootCmd *cobra.Command) {
	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Manage DNS records",
	}
	recordCmd.AddCommand(
		newRecordListCmd(a),
		newRecordCreateCmd(a),
		newRecordUpdateCmd(a),
		newRecordDeleteCmd(a),
	)
	rootCmd.AddCommand(recordCmd)
}

func newRecordListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <zone-id>",
		Short: "List the records of a zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.client.Record.All(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Type", "Name", "Value", "TTL"})
			for _, record := range records {
				ttl := ""
				if record.TTL > 0 {
					ttl = strconv.Itoa(record.TTL)
				}
				table.Append([]string{
					record.ID, string(record.Type), record.Name, record.Value, ttl,
				})
			}
			table.Render()
			return nil
		},
	}
}

func newRecordCreateCmd(a *app) *cobra.Command {
	var ttl int
	cmd := &cobra.Command{
		Use:   "create <zone-id> <name> <type> <value>",
		Short: "Create a record",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := a.client.Record.Create(cmd.Context(), hetzner.RecordCreateOpts{
				ZoneID: args[0],
				Name:   args[1],
				Type:   hetzner.RecordType(args[2]),
				Value:  args[3],
				TTL:    ttl,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "record %s created, id %s\n", record.Name, record.ID)
			return nil
		},
	}
	cmd.Flags().IntVar(&ttl, "ttl", 0, "TTL of the record, zone default when omitted")
	return cmd
}

func newRecordUpdateCmd(a *app) *cobra.Command {
	var ttl int
	cmd := &cobra.Command{
		Use:   "update <record-id> <zone-id> <name> <type> <value>",
		Short: "Update a record",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := a.client.Record.Update(cmd.Context(), args[0], hetzner.RecordCreateOpts{
				ZoneID: args[1],
				Name:   args[2],
				Type:   hetzner.RecordType(args[3]),
				Value:  args[4],
				TTL:    ttl,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "record %s updated\n", record.ID)
			return nil
		},
	}
	cmd.Flags().IntVar(&ttl, "ttl", 0, "TTL of the record, zone default when omitted")
	return cmd
}

func newRecordDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <record-id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recordID := args[0]
			ok, err := confirm(cmd, yes, fmt.Sprintf("delete record %s?", recordID))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
			if err := a.client.Record.Delete(cmd.Context(), recordID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "record %s deleted\n", recordID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}
