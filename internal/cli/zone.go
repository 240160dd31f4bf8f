/*
 * Zone - zone subcommands.
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
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"hetzner-dns-api/internal/zonefile"
	"hetzner-dns-api/pkg/hetzner"
)

// registerZoneCmd attaches the zone subcommands to the root command.
func registerZoneCmd(a *app, rootCmd *cobra.Command) {
	zoneCmd := &cobra.Command{
		Use:   "zone",
		Short: "Manage DNS zones",
	}
	zoneCmd.AddCommand(
		newZoneListCmd(a),
		newZoneExportCmd(a),
		newZoneImportCmd(a),
		newZoneValidateCmd(a),
		newZoneCreateCmd(a),
		newZoneDeleteCmd(a),
	)
	rootCmd.AddCommand(zoneCmd)
}

func newZoneListCmd(a *app) *cobra.Command {
	var searchName string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all zones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			iter, err := a.client.Zone.All(cmd.Context(), hetzner.ZoneListOpts{
				SearchName: searchName,
			})
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Name", "Records", "Verified"})
			for iter.Next(cmd.Context()) {
				zone := iter.Zone()
				verified := "no"
				if ts, ok := zone.Verified.Timestamp(); ok {
					verified = ts.String()
				}
				table.Append([]string{
					zone.ID, zone.Name,
					fmt.Sprintf("%d", zone.RecordsCount), verified,
				})
			}
			if err := iter.Err(); err != nil {
				return err
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&searchName, "search", "", "only list zones with a partially matching name")
	return cmd
}

func newZoneExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <zone-id>",
		Short: "Print a zone as zone file text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := a.client.Zone.Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

func newZoneImportCmd(a *app) *cobra.Command {
	var bumpSerial bool
	cmd := &cobra.Command{
		Use:   "import <zone-id> <file>",
		Short: "Replace the contents of a zone with a local zone file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneID := args[0]
			content, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			if bumpSerial {
				zone, err := a.client.Zone.Get(cmd.Context(), zoneID)
				if err != nil {
					return err
				}
				zf, err := zonefile.Parse(bytes.NewReader(content), zone.Name, zone.TTL)
				if err != nil {
					return err
				}
				if err := zf.BumpSerial(); err != nil {
					return err
				}
				rendered, err := zf.Render()
				if err != nil {
					return err
				}
				content = []byte(rendered)
			}
			zone, err := a.client.Zone.Import(cmd.Context(), zoneID, string(content))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "zone %s imported, %d records\n",
				zone.Name, zone.RecordsCount)
			return nil
		},
	}
	cmd.Flags().BoolVar(&bumpSerial, "bump-serial", false, "refresh the SOA serial before upload")
	return cmd
}

func newZoneValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <zone-id> <file>",
		Short: "Validate a local zone file without applying it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneID := args[0]
			content, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			// Parse locally first, so obviously broken files never leave
			// the machine.
			zone, err := a.client.Zone.Get(cmd.Context(), zoneID)
			if err != nil {
				return err
			}
			zf, err := zonefile.Parse(bytes.NewReader(content), zone.Name, zone.TTL)
			if err != nil {
				return err
			}
			summary := zf.Summary()
			types := make([]string, 0, len(summary))
			for name := range summary {
				types = append(types, name)
			}
			sort.Strings(types)
			for _, name := range types {
				fmt.Fprintf(cmd.OutOrStdout(), "local: %d %s records\n", summary[name], name)
			}

			result, err := a.client.Zone.Validate(cmd.Context(), zoneID, string(content))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "provider: parsed %d records, %d valid\n",
				result.ParsedRecords, len(result.ValidRecords))
			return nil
		},
	}
}

func newZoneCreateCmd(a *app) *cobra.Command {
	var ttl int
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, err := a.client.Zone.Create(cmd.Context(), hetzner.ZoneCreateOpts{
				Name: args[0],
				TTL:  ttl,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "zone %s created, id %s\n", zone.Name, zone.ID)
			printNameservers(cmd, zone)
			return nil
		},
	}
	cmd.Flags().IntVar(&ttl, "ttl", 0, "default TTL of the zone")
	return cmd
}

func newZoneDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <zone-id>",
		Short: "Delete a zone and all of its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneID := args[0]
			ok, err := confirm(cmd, yes, fmt.Sprintf("delete zone %s and all of its records?", zoneID))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
			if err := a.client.Zone.Delete(cmd.Context(), zoneID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "zone %s deleted\n", zoneID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

// printNameservers lists the authoritative nameservers of a fresh zone, so
// they can be set at the registrar.
func printNameservers(cmd *cobra.Command, zone *hetzner.Zone) {
	ns := append([]string(nil), zone.NS...)
	sort.Strings(ns)
	for _, server := range ns {
		fmt.Fprintf(cmd.OutOrStdout(), "nameserver: %s\n", server)
	}
}
