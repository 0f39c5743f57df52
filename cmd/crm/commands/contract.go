package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/contract"
)

func contractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contrat",
		Short: "Gestion des contrats",
	}
	cmd.AddCommand(contractListCmd(), contractAddCmd(), contractUpdateCmd(), contractDeleteCmd())
	return cmd
}

func contractListCmd() *cobra.Command {
	var clientID int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Liste les contrats d'un client",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderTable(cmd, contract.TableColumns, contractSvc.TableRows(cmd.Context(), clientID))
			return nil
		},
	}
	cmd.Flags().IntVar(&clientID, "client-id", 0, "identifiant du client")
	_ = cmd.MarkFlagRequired("client-id")
	return cmd
}

func contractAddCmd() *cobra.Command {
	var (
		clientID int
		name     string
		amount   float64
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Crée un contrat pour un client",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := contractSvc.CreateContract(cmd.Context(), contract.CreateContractInput{
				ClientID: clientID,
				Name:     name,
				Amount:   amount,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Contrat %d créé : %s\n", created.ID, created.Name)
			return nil
		},
	}
	cmd.Flags().IntVar(&clientID, "client-id", 0, "identifiant du client")
	cmd.Flags().StringVar(&name, "nom", "", "nom du contrat")
	cmd.Flags().Float64Var(&amount, "montant", 0, "montant du contrat (> 0)")
	return cmd
}

func contractUpdateCmd() *cobra.Command {
	var (
		name   string
		amount float64
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Modifie un contrat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("identifiant invalide : %s", args[0])
			}

			updated, err := contractSvc.UpdateContract(cmd.Context(), contract.UpdateContractInput{
				ID:     id,
				Name:   name,
				Amount: amount,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Contrat %d modifié : %s\n", updated.ID, updated.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "nom", "", "nom du contrat")
	cmd.Flags().Float64Var(&amount, "montant", 0, "montant du contrat (> 0)")
	return cmd
}

func contractDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Supprime un contrat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("identifiant invalide : %s", args[0])
			}

			if !contractSvc.DeleteContract(cmd.Context(), contract.DeleteContractInput{ID: id}) {
				return fmt.Errorf("contrat %d introuvable", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Contrat %d supprimé\n", id)
			return nil
		},
	}
}
