package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cgpe/repopa/internal/core/domain"
)

func newEntesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entes",
		Short: "Query and maintain registered entes",
	}
	cmd.AddCommand(newEntesListCmd(), newEntesGetCmd(), newEntesCreateCmd())
	return cmd
}

type enteSummary struct {
	Folio  string `json:"folio"`
	Nombre string `json:"nombre"`
	Tipo   string `json:"tipo"`
	Sector string `json:"sector"`
}

type entesListPayload struct {
	Data       []enteSummary `json:"data"`
	Pagination struct {
		Total int64 `json:"total"`
	} `json:"pagination"`
}

func newEntesListCmd() *cobra.Command {
	var tipo, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered entes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRole(domain.RoleAdmin, domain.RoleCaptura, domain.RoleConsulta); err != nil {
				return err
			}

			q := url.Values{}
			if tipo != "" {
				q.Set("tipo", tipo)
			}
			if search != "" {
				q.Set("search", search)
			}
			path := "/v1/entes"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			var payload entesListPayload
			if err := client.do("GET", path, nil, &payload); err != nil {
				return err
			}

			for _, e := range payload.Data {
				fmt.Printf("%-22s %-12s %-20s %s\n", e.Folio, e.Tipo, e.Sector, e.Nombre)
			}
			fmt.Printf("%d entes total\n", payload.Pagination.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&tipo, "tipo", "", "filter by tipo (ORGANISMO, FIDEICOMISO, EMPRESA)")
	cmd.Flags().StringVar(&search, "search", "", "partial match on nombre or folio")
	return cmd
}

func newEntesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <folio>",
		Short: "Show one ente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRole(domain.RoleAdmin, domain.RoleCaptura, domain.RoleConsulta); err != nil {
				return err
			}

			var ente json.RawMessage
			path := "/v1/entes/" + url.PathEscape(args[0])
			if err := client.do("GET", path, nil, &ente); err != nil {
				return err
			}

			pretty, err := json.MarshalIndent(ente, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(pretty))
			return nil
		},
	}
}

func newEntesCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new ente from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Client-side gate: CONSULTA never reaches the network with a
			// mutation. The server enforces the same rule independently.
			if err := requireRole(domain.RoleAdmin, domain.RoleCaptura); err != nil {
				return err
			}

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read ente file: %w", err)
			}
			var body map[string]any
			if err := json.Unmarshal(data, &body); err != nil {
				return fmt.Errorf("parse ente file: %w", err)
			}

			var created struct {
				Folio string `json:"folio"`
			}
			if err := client.do("POST", "/v1/entes", body, &created); err != nil {
				return err
			}

			fmt.Printf("Created ente %s\n", created.Folio)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with the ente payload")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// requireRole refuses the command when the held session is absent, expired,
// or outside the allowed role set.
func requireRole(allowed ...domain.Role) error {
	sess := holder.Current()
	if err := domain.Authorize(sess, time.Now(), allowed...); err != nil {
		if sess == nil {
			return fmt.Errorf("not logged in: run `repopactl login`")
		}
		return fmt.Errorf("insufficient permissions: role %s cannot perform this action", sess.Role)
	}
	return nil
}
