package system

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byfernandatovar/byfernandatovar/pkg/contactform"
)

// NewTestFormCommand submits a synthetic inquiry through the public
// endpoint, exercising the same path the site's form does.
func NewTestFormCommand() *cobra.Command {
	var endpoint string

	cmd := &cobra.Command{
		Use:   "testform",
		Short: "Submit a test inquiry against a running server",
		Long: `Submit a synthetic contact form inquiry to a running server and report
the outcome. Use against a staging deployment; the inquiry lands in the
configured studio inbox.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := contactform.New(endpoint)
			form.SetField("brideFullName", "Prueba Novia")
			form.SetField("groomFullName", "Prueba Novio")
			form.SetField("email", "prueba@byfernandatovar.com")
			form.SetField("weddingDate", "2030-01-01")
			form.SetField("weddingCity", "Ciudad de Prueba")
			form.SetField("weddingDetails", "Envío de prueba desde la CLI, ignorar.")

			state, err := form.Submit(cmd.Context())
			if err != nil {
				return fmt.Errorf("submission failed: %w", err)
			}
			fmt.Printf("%s: %s\n", state.Status, state.Message)
			if state.Status != contactform.StatusSucceeded {
				return fmt.Errorf("server rejected the test inquiry")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "http://localhost:8080/api/v1/contact", "contact endpoint URL")

	return cmd
}
