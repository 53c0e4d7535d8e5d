package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"mfroosh-trade-backend/pkg/enquiryform"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var (
	serverURL string
	lang      string
	timeout   time.Duration
	values    enquiryform.Values
)

var rootCmd = &cobra.Command{
	Use:   "enquiry",
	Short: "Submit product enquiries to the Mfroosh Trade website",
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send one enquiry and print the result banner",
	Long: `Send one enquiry through the same flow as the website form.

Example:
  enquiry send --name "Huda" --email huda@example.com --phone 0501112222 \
    --product dates --message "Wholesale price for 2 tonnes?"`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc := enquiryform.NewLocalizer(lang)
		client := enquiryform.NewClient(serverURL, &http.Client{Timeout: timeout})

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		form := enquiryform.New(client, enquiryform.Options{
			DefaultProduct: values.Product,
			Localizer:      loc,
			OnChange: func(snap enquiryform.Snapshot) {
				if snap.State == enquiryform.StateSubmitting {
					s.Suffix = " " + enquiryform.Render(snap, loc).SubmitLabel
					s.Start()
				}
			},
		})
		defer form.Close()

		form.SetValues(values)
		err := form.Submit(cmd.Context())
		s.Stop()
		if err != nil {
			return err
		}

		view := form.View()
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", view.BannerTitle, view.BannerText)
		if view.Banner == enquiryform.BannerError {
			return fmt.Errorf("enquiry not accepted")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the website backend")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "en", "Language for messages (en, ar)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "HTTP timeout")

	f := sendCmd.Flags()
	f.StringVar(&values.Name, "name", "", "Full name")
	f.StringVar(&values.Email, "email", "", "Email address")
	f.StringVar(&values.Phone, "phone", "", "Phone number")
	f.StringVar(&values.Company, "company", "", "Company (optional)")
	f.StringVar(&values.Product, "product", "", "Product of interest")
	f.StringVar(&values.Message, "message", "", "Message")

	rootCmd.AddCommand(sendCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
