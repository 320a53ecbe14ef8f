package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"lead-gateway/pkg/app"
	"lead-gateway/pkg/config"
)

func signCmd() *cobra.Command {
	var (
		method   string
		rawURL   string
		bodyFile string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Print the signed headers for a loan API request",
		Long: `Sign a request with BASIC_APPLICATION_USER_ID and BASIC_APPLICATION_API_KEY
and print the resulting headers. The body file is signed byte for byte.

Examples:
  leadctl sign --method GET --url https://api.example.com/api/v1/Application/Activity/GetActivity/BA1/9876543210
  leadctl sign --method POST --url https://api.example.com/api/v1/NewApplication/FullfilmentByBasic --body lead.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var body []byte
			if bodyFile != "" {
				b, err := os.ReadFile(bodyFile)
				if err != nil {
					return fmt.Errorf("error reading body: %w", err)
				}
				body = b
			}

			headers, err := app.NewSigner(config.LoadConfig()).Sign(rawURL, strings.ToUpper(method), body)
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(headers))
			for k := range headers {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", k, headers[k])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "X", "GET", "HTTP method")
	cmd.Flags().StringVar(&rawURL, "url", "", "full request URL")
	cmd.Flags().StringVar(&bodyFile, "body", "", "file holding the JSON request body")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}
