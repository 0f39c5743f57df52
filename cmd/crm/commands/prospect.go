package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/prospect"
)

type prospectFlags struct {
	name         string
	streetNumber string
	streetName   string
	postalCode   string
	city         string
	phone        string
	email        string
	notes        string
	date         string
	interest     string
}

func (f *prospectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "raison-sociale", "", "raison sociale de la société")
	cmd.Flags().StringVar(&f.streetNumber, "numero-rue", "", "numéro de rue")
	cmd.Flags().StringVar(&f.streetName, "nom-rue", "", "nom de rue")
	cmd.Flags().StringVar(&f.postalCode, "code-postal", "", "code postal (5 chiffres)")
	cmd.Flags().StringVar(&f.city, "ville", "", "ville")
	cmd.Flags().StringVar(&f.phone, "telephone", "", "numéro de téléphone")
	cmd.Flags().StringVar(&f.email, "email", "", "adresse e-mail")
	cmd.Flags().StringVar(&f.notes, "commentaires", "", "commentaires libres")
	cmd.Flags().StringVar(&f.date, "date", "", "date de prospection (jj/mm/aaaa)")
	cmd.Flags().StringVar(&f.interest, "interesse", "", "intéressé (oui ou non)")
}

func (f *prospectFlags) createInput() (prospect.CreateProspectInput, error) {
	visited, err := prospect.ParseDate(f.date)
	if err != nil {
		return prospect.CreateProspectInput{}, err
	}
	interest, err := prospect.ParseInterest(f.interest)
	if err != nil {
		return prospect.CreateProspectInput{}, err
	}
	return prospect.CreateProspectInput{
		Name:         f.name,
		StreetNumber: f.streetNumber,
		StreetName:   f.streetName,
		PostalCode:   f.postalCode,
		City:         f.city,
		Phone:        f.phone,
		Email:        f.email,
		Notes:        f.notes,
		ProspectedAt: visited,
		Interest:     interest,
	}, nil
}

func prospectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prospect",
		Short: "Gestion des prospects",
	}
	cmd.AddCommand(prospectListCmd(), prospectAddCmd(), prospectUpdateCmd(), prospectDeleteCmd())
	return cmd
}

func prospectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Liste les prospects par raison sociale",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderTable(cmd, prospect.TableColumns, prospectSvc.TableRows(cmd.Context()))
			return nil
		},
	}
}

func prospectAddCmd() *cobra.Command {
	var flags prospectFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Crée un prospect",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.createInput()
			if err != nil {
				return err
			}
			created, err := prospectSvc.CreateProspect(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Prospect %d créé : %s\n", created.ID, created.Name)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func prospectUpdateCmd() *cobra.Command {
	var flags prospectFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Modifie un prospect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("identifiant invalide : %s", args[0])
			}

			in, err := flags.createInput()
			if err != nil {
				return err
			}
			updated, err := prospectSvc.UpdateProspect(cmd.Context(), prospect.UpdateProspectInput{
				ID:           id,
				Name:         in.Name,
				StreetNumber: in.StreetNumber,
				StreetName:   in.StreetName,
				PostalCode:   in.PostalCode,
				City:         in.City,
				Phone:        in.Phone,
				Email:        in.Email,
				Notes:        in.Notes,
				ProspectedAt: in.ProspectedAt,
				Interest:     in.Interest,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Prospect %d modifié : %s\n", updated.ID, updated.Name)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func prospectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Supprime un prospect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("identifiant invalide : %s", args[0])
			}

			if !prospectSvc.DeleteProspect(cmd.Context(), prospect.DeleteProspectInput{ID: id}) {
				return fmt.Errorf("prospect %d introuvable", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Prospect %d supprimé\n", id)
			return nil
		},
	}
}
