package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/client"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/contract"
)

type clientFlags struct {
	name         string
	streetNumber string
	streetName   string
	postalCode   string
	city         string
	phone        string
	email        string
	notes        string
	revenue      int64
	headcount    int
}

func (f *clientFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "raison-sociale", "", "raison sociale de la société")
	cmd.Flags().StringVar(&f.streetNumber, "numero-rue", "", "numéro de rue")
	cmd.Flags().StringVar(&f.streetName, "nom-rue", "", "nom de rue")
	cmd.Flags().StringVar(&f.postalCode, "code-postal", "", "code postal (5 chiffres)")
	cmd.Flags().StringVar(&f.city, "ville", "", "ville")
	cmd.Flags().StringVar(&f.phone, "telephone", "", "numéro de téléphone")
	cmd.Flags().StringVar(&f.email, "email", "", "adresse e-mail")
	cmd.Flags().StringVar(&f.notes, "commentaires", "", "commentaires libres")
	cmd.Flags().Int64Var(&f.revenue, "chiffre-affaires", 0, "chiffre d'affaires (>= 200)")
	cmd.Flags().IntVar(&f.headcount, "nb-employes", 0, "nombre d'employés (>= 1)")
}

func clientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Gestion des clients",
	}
	cmd.AddCommand(clientListCmd(), clientAddCmd(), clientShowCmd(), clientUpdateCmd(), clientDeleteCmd())
	return cmd
}

func clientListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Liste les clients par raison sociale",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderTable(cmd, client.TableColumns, clientSvc.TableRows(cmd.Context()))
			return nil
		},
	}
}

func clientAddCmd() *cobra.Command {
	var flags clientFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Crée un client",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := clientSvc.CreateClient(cmd.Context(), client.CreateClientInput{
				Name:         flags.name,
				StreetNumber: flags.streetNumber,
				StreetName:   flags.streetName,
				PostalCode:   flags.postalCode,
				City:         flags.city,
				Phone:        flags.phone,
				Email:        flags.email,
				Notes:        flags.notes,
				Revenue:      flags.revenue,
				Headcount:    flags.headcount,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Client %d créé : %s\n", created.ID, created.Name)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func clientShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Affiche un client et ses contrats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("identifiant invalide : %s", args[0])
			}

			c, err := clientSvc.GetClient(cmd.Context(), client.GetClientInput{ID: id})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Raison sociale : %s\n", c.Name)
			fmt.Fprintf(out, "Adresse        : %s\n", c.Address.String())
			fmt.Fprintf(out, "Téléphone      : %s\n", c.Phone)
			fmt.Fprintf(out, "Email          : %s\n", c.Email)
			fmt.Fprintf(out, "CA (€)         : %d\n", c.Revenue)
			fmt.Fprintf(out, "Nb employés    : %d\n", c.Headcount)
			if c.Notes != "" {
				fmt.Fprintf(out, "Commentaires   : %s\n", c.Notes)
			}

			contracts := contractSvc.ContractsByClient(cmd.Context(), c.ID)
			if len(contracts) > 0 {
				fmt.Fprintln(out, "\nContrats :")
				renderTable(cmd, contract.TableColumns, contractSvc.TableRows(cmd.Context(), c.ID))
			}
			return nil
		},
	}
}

func clientUpdateCmd() *cobra.Command {
	var flags clientFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Modifie un client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("identifiant invalide : %s", args[0])
			}

			updated, err := clientSvc.UpdateClient(cmd.Context(), client.UpdateClientInput{
				ID:           id,
				Name:         flags.name,
				StreetNumber: flags.streetNumber,
				StreetName:   flags.streetName,
				PostalCode:   flags.postalCode,
				City:         flags.city,
				Phone:        flags.phone,
				Email:        flags.email,
				Notes:        flags.notes,
				Revenue:      flags.revenue,
				Headcount:    flags.headcount,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Client %d modifié : %s\n", updated.ID, updated.Name)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func clientDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Supprime un client et ses contrats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("identifiant invalide : %s", args[0])
			}

			if !clientSvc.DeleteClient(cmd.Context(), client.DeleteClientInput{ID: id}) {
				return fmt.Errorf("client %d introuvable", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Client %d supprimé\n", id)
			return nil
		},
	}
}
