package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"example.com/denine-prints/internal/config"
	domcart "example.com/denine-prints/internal/domain/cart"
	"example.com/denine-prints/internal/infra/security"
	cartuc "example.com/denine-prints/internal/usecase/cart"
)

var errEphemeralStorage = errors.New("cart commands need durable storage, not the memory driver")

type cartOptions struct {
	root    *rootOptions
	session string
}

func newCartCmd(root *rootOptions) *cobra.Command {
	opts := &cartOptions{root: root}

	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect or reset the cart of one session",
	}
	cmd.PersistentFlags().StringVar(&opts.session, "session", "", "cart session token")
	_ = cmd.MarkPersistentFlagRequired("session")

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the items and totals of a cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withCart(cmd.Context(), func(ctx context.Context, svc *cartuc.Service, key string) error {
				summary, err := svc.Summary(ctx, key)
				if err != nil {
					return err
				}
				return printSummary(cmd.OutOrStdout(), summary)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty a cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withCart(cmd.Context(), func(ctx context.Context, svc *cartuc.Service, key string) error {
				if _, err := svc.Clear(ctx, key); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "cart cleared")
				return nil
			})
		},
	})

	return cmd
}

// withCart resolves the session token to its storage key and runs fn
// against the configured storage.
func (o *cartOptions) withCart(ctx context.Context, fn func(context.Context, *cartuc.Service, string) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(o.root.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Storage.Driver == config.DriverMemory {
		return errEphemeralStorage
	}

	sessions := security.NewSessionService(cfg.Session.Secret, cfg.Session.TTL, cfg.Storage.Key)
	session, err := sessions.Parse(o.session)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	storage, closeStorage, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer closeStorage()

	return fn(ctx, cartuc.NewService(storage, logger), sessions.StorageKey(session.ID))
}

func printSummary(out io.Writer, s domcart.Summary) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tTYPE\tQTY\tPRICE")
	for _, item := range s.Items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", item.ID, item.VariantType, item.Quantity, money(item.Price))
	}
	fmt.Fprintf(tw, "\t\tSubtotal\t%s\n", money(s.Subtotal))
	fmt.Fprintf(tw, "\t\tShipping\t%s\n", money(s.Shipping))
	fmt.Fprintf(tw, "\t\tTotal\t%s\n", money(s.Total))
	return tw.Flush()
}

func money(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
