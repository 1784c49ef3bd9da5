package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/tiendapyme-api/internal/domain/cartshare"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

func newCartCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "cart", Short: "Códigos de carrito compartido"}

	cmd.AddCommand(&cobra.Command{
		Use:   "encode [json]",
		Short: "Codifica una lista de ítems (argumento o stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			if len(args) == 1 {
				raw = []byte(args[0])
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				raw = b
			}
			var items []entity.CartItem
			if err := json.Unmarshal(raw, &items); err != nil {
				return fmt.Errorf("ítems inválidos: %w", err)
			}
			code, err := cartshare.Encode(items)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "decode <código>",
		Short: "Decodifica y valida un código de carrito",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := cartshare.Decode(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		},
	})
	return cmd
}
