package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ogurasousui/codex-crm-clean-arch/internal/adapters/repository/memory"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/client"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/company"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/contract"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/prospect"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/platform/config"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/platform/logger"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/seed"
)

var (
	cfgPath string

	log         *logger.Logger
	clientSvc   *client.Service
	prospectSvc *prospect.Service
	contractSvc *contract.Service
)

// Execute はルートコマンドを構築して実行します。各サブコマンドは
// PersistentPreRunE で初期化されたインメモリのサービス群を共有します。
func Execute() error {
	root := &cobra.Command{
		Use:           "crm",
		Short:         "Gestion de clients, prospects et contrats",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			if cfg.Logging.File != "" {
				if err := os.MkdirAll(filepath.Dir(cfg.Logging.File), 0o755); err != nil {
					return err
				}
			}
			log, err = logger.New(cfg.Logging.Mode, cfg.Logging.File)
			if err != nil {
				return err
			}

			contractRepo := memory.NewContractRepository()
			clientRepo := memory.NewClientRepository(contractRepo)
			prospectRepo := memory.NewProspectRepository()
			checker := company.NewUnicityChecker(clientRepo, prospectRepo)

			clientSvc = client.NewService(clientRepo, checker, log)
			prospectSvc = prospect.NewService(prospectRepo, checker, log)
			contractSvc = contract.NewService(contractRepo, clientRepo, log)

			if cfg.Seed.Demo {
				if err := seed.Demo(cmd.Context(), clientSvc, prospectSvc, contractSvc); err != nil {
					return err
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "chemin du fichier de configuration")

	root.AddCommand(clientCmd(), prospectCmd(), contractCmd())
	return root.Execute()
}

// renderTable は列見出しと行をタブ区切りで整形して出力します。
func renderTable(cmd *cobra.Command, columns []string, rows [][]string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for i, col := range columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
}
