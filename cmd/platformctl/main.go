// Platformctl is the command-line interface for operating a running
// quoteforge platform: inspecting Pricing Aggregator metrics, starting a
// checkout, and tailing a checkout's status stream.
//
// Usage:
//
//	platformctl pricing metrics --addr localhost:10000
//	platformctl checkout start --customer-id c1 --product-id sku-1 --vendor-id v1 --payment-method-id pm-1 --amount-cents 1000
//	platformctl checkout status --checkout-id checkout-123-1 --addr localhost:9200
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	checkoutv1 "github.com/quoteforge/platform/internal/proto/checkout/v1"
	quotingv1 "github.com/quoteforge/platform/internal/proto/quoting/v1"
)

var verbose bool

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	rootCmd := &cobra.Command{
		Use:           "platformctl",
		Short:         "platformctl operates a running quoteforge platform",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(pricingCmd())
	rootCmd.AddCommand(checkoutCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func pricingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pricing",
		Short: "Pricing Aggregator operations",
	}

	metricsCmd := &cobra.Command{
		Use:   "metrics",
		Short: "Fetch the Pricing Aggregator's /metrics snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			client := &http.Client{Timeout: 5 * time.Second}
			resp, err := client.Get("http://" + addr + "/metrics")
			if err != nil {
				return fmt.Errorf("failed to fetch metrics: %w", err)
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("failed to read metrics response: %w", err)
			}
			var parsed map[string]interface{}
			if err := json.Unmarshal(body, &parsed); err != nil {
				return fmt.Errorf("failed to parse metrics response: %w", err)
			}
			printJSON(parsed)
			return nil
		},
	}
	metricsCmd.Flags().String("addr", "localhost:10000", "Pricing Aggregator metrics address (host:port)")

	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Issue a StreamQuotes call directly against the Pricing Aggregator",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			productID, _ := cmd.Flags().GetString("product-id")

			conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return fmt.Errorf("failed to dial pricing aggregator: %w", err)
			}
			defer conn.Close()

			client := quotingv1.NewVendorPricingClient(conn)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			stream, err := client.StreamQuotes(ctx, &quotingv1.QuoteRequest{ProductId: productID, Quantity: 1, CurrencyCode: "USD"})
			if err != nil {
				return fmt.Errorf("failed to start stream: %w", err)
			}

			for {
				quote, err := stream.Recv()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return fmt.Errorf("stream error: %w", err)
				}
				printJSON(map[string]interface{}{
					"vendorId":      quote.GetVendorId(),
					"vendor":        quote.GetVendorName(),
					"amountCents":   quote.GetPrice().GetAmountCents(),
					"currency":      quote.GetPrice().GetCurrencyCode(),
					"estimatedDays": quote.GetEstimatedDays(),
				})
			}
		},
	}
	quoteCmd.Flags().String("addr", "localhost:9000", "Pricing Aggregator grpc address (host:port)")
	quoteCmd.Flags().String("product-id", "", "product id to quote (required)")
	_ = quoteCmd.MarkFlagRequired("product-id")

	cmd.AddCommand(metricsCmd, quoteCmd)
	return cmd
}

func checkoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Checkout Engine operations",
	}

	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start a single-item checkout",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			customerID, _ := cmd.Flags().GetString("customer-id")
			productID, _ := cmd.Flags().GetString("product-id")
			vendorID, _ := cmd.Flags().GetString("vendor-id")
			paymentMethodID, _ := cmd.Flags().GetString("payment-method-id")
			amountCents, _ := cmd.Flags().GetInt64("amount-cents")
			quantity, _ := cmd.Flags().GetInt32("quantity")

			conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return fmt.Errorf("failed to dial checkout engine: %w", err)
			}
			defer conn.Close()

			client := checkoutv1.NewCheckoutClient(conn)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			resp, err := client.Start(ctx, &checkoutv1.CheckoutRequest{
				CustomerId: customerID,
				Items: []*checkoutv1.CheckoutItem{{
					ProductId: productID,
					Quantity:  quantity,
					UnitPrice: &quotingv1.Money{CurrencyCode: "USD", AmountCents: amountCents},
					VendorId:  vendorID,
				}},
				ShippingAddress: "cli-issued",
				PaymentMethodId: paymentMethodID,
			})
			if err != nil {
				return fmt.Errorf("start failed: %w", err)
			}

			printJSON(map[string]interface{}{
				"checkoutId": resp.GetCheckoutId(),
				"state":      resp.GetOverallState().String(),
				"message":    resp.GetMessage(),
			})
			return nil
		},
	}
	startCmd.Flags().String("addr", "localhost:9200", "Checkout Engine grpc address (host:port)")
	startCmd.Flags().String("customer-id", "", "customer id (required)")
	startCmd.Flags().String("product-id", "", "product id (required)")
	startCmd.Flags().String("vendor-id", "", "vendor id (required)")
	startCmd.Flags().String("payment-method-id", "", "payment method id (required)")
	startCmd.Flags().Int64("amount-cents", 0, "unit price in cents (required)")
	startCmd.Flags().Int32("quantity", 1, "quantity")
	_ = startCmd.MarkFlagRequired("customer-id")
	_ = startCmd.MarkFlagRequired("product-id")
	_ = startCmd.MarkFlagRequired("vendor-id")
	_ = startCmd.MarkFlagRequired("payment-method-id")
	_ = startCmd.MarkFlagRequired("amount-cents")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Tail a checkout's status stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			checkoutID, _ := cmd.Flags().GetString("checkout-id")

			conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return fmt.Errorf("failed to dial checkout engine: %w", err)
			}
			defer conn.Close()

			client := checkoutv1.NewCheckoutClient(conn)
			ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
			defer cancel()

			stream, err := client.GetStatus(ctx, &checkoutv1.GetStatusRequest{CheckoutId: checkoutID})
			if err != nil {
				return fmt.Errorf("failed to open status stream: %w", err)
			}

			for {
				ns, err := stream.Recv()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return fmt.Errorf("stream error: %w", err)
				}
				printJSON(map[string]interface{}{
					"nodeId":       ns.GetNodeId().String(),
					"state":        ns.GetState().String(),
					"message":      ns.GetMessage(),
					"errorCode":    ns.GetErrorCode(),
					"errorMessage": ns.GetErrorMessage(),
				})
			}
		},
	}
	statusCmd.Flags().String("addr", "localhost:9200", "Checkout Engine grpc address (host:port)")
	statusCmd.Flags().String("checkout-id", "", "checkout id (required)")
	_ = statusCmd.MarkFlagRequired("checkout-id")

	cmd.AddCommand(startCmd, statusCmd)
	return cmd
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
