package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"campusAdmin/internal/modules/catalog/domain"
)

func newListCmd(a *app) *cobra.Command {
	var (
		page    int
		limit   int
		sortBy  string
		order   string
		search  string
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "List records of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := domain.ListQuery{Page: page, PageSize: limit}
			if sortBy != "" {
				query.Sort = []domain.Sorter{{Field: sortBy, Order: order}}
			}
			if search != "" {
				query.Filters = append(query.Filters, domain.Filter{Field: "q", Operator: "contains", Value: search})
			}
			for _, pair := range filters {
				field, value, found := strings.Cut(pair, "=")
				if !found {
					return fmt.Errorf("invalid filter %q, expected field=value", pair)
				}
				query.Filters = append(query.Filters, domain.Filter{Field: field, Operator: "eq", Value: value})
			}

			result, err := a.provider.List(cmd.Context(), args[0], query)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "page size")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort field")
	cmd.Flags().StringVar(&order, "order", "asc", "sort direction (asc or desc)")
	cmd.Flags().StringVar(&search, "search", "", "free text search")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as field=value (repeatable)")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <resource> <id>",
		Short: "Fetch one record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := a.provider.GetOne(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd, record)
		},
	}
}

func newCreateCmd(a *app) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "create <resource>",
		Short: "Create a record from a JSON payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := decodeRecordFlag(data)
			if err != nil {
				return err
			}
			record, err := a.provider.Create(cmd.Context(), args[0], values)
			if err != nil {
				return err
			}
			return printJSON(cmd, record)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "record fields as a JSON object")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func newUpdateCmd(a *app) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "update <resource> <id>",
		Short: "Update a record from a JSON payload",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := decodeRecordFlag(data)
			if err != nil {
				return err
			}
			record, err := a.provider.Update(cmd.Context(), args[0], args[1], values)
			if err != nil {
				return err
			}
			return printJSON(cmd, record)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "record fields as a JSON object")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <resource> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.provider.DeleteOne(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s/%s\n", args[0], args[1])
			return nil
		},
	}
}

func decodeRecordFlag(data string) (domain.Record, error) {
	var values domain.Record
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, fmt.Errorf("invalid --data payload: %w", err)
	}
	return values, nil
}
