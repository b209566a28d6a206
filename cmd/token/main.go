// Command token emite um bearer token de administrador para as rotas /v1/cron e /v1/dataset/loads.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-visualiser/internal/config"
	"github.com/vfg2006/sales-visualiser/internal/usecases/authenticating"
)

var subject string

func main() {
	rootCmd := &cobra.Command{
		Use:   "token",
		Short: "Gera um token de administrador assinado com SECRET_KEY",
		RunE:  generateToken,
	}

	rootCmd.Flags().StringVarP(&subject, "subject", "s", "operator", "identificação de quem vai usar o token")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateToken(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	token, err := authenticating.NewService(cfg).GenerateToken(subject)
	if err != nil {
		return fmt.Errorf("erro ao gerar token: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"subject": subject,
		"ttl":     cfg.Auth.AdminTokenTTL.String(),
	}).Info("Token de administrador gerado")

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
