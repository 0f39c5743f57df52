// Package seed はデモデータの投入を提供します。
package seed

import (
	"context"
	"fmt"

	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/client"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/contract"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/prospect"
)

// Demo はデモ用のクライアント、契約、プロスペクトを投入します。
// すべての値は各サービスの通常の検証を通過します。
func Demo(ctx context.Context, clients client.UseCase, prospects prospect.UseCase, contracts contract.UseCase) error {
	clientInputs := []client.CreateClientInput{
		{
			Name:         "IBM",
			StreetNumber: "10",
			StreetName:   "Victor Hugo",
			PostalCode:   "54000",
			City:         "Nancy",
			Phone:        "0778663083",
			Email:        "ibm@ibm.com",
			Revenue:      5000,
			Headcount:    10,
		},
		{
			Name:         "Apple",
			StreetNumber: "102",
			StreetName:   "Victor Duquesnay",
			PostalCode:   "97233",
			City:         "Schoelcher",
			Phone:        "0778663083",
			Email:        "apple@apple.com",
			Revenue:      50000,
			Headcount:    100,
		},
		{
			Name:         "Microsoft",
			StreetNumber: "25",
			StreetName:   "L'Esperance",
			PostalCode:   "54390",
			City:         "Frouard",
			Phone:        "0778663083",
			Email:        "microsoft@microsoft.com",
			Revenue:      500000,
			Headcount:    1000,
		},
	}

	clientIDs := make([]int, 0, len(clientInputs))
	for _, in := range clientInputs {
		created, err := clients.CreateClient(ctx, in)
		if err != nil {
			return fmt.Errorf("seed: client %s: %w", in.Name, err)
		}
		clientIDs = append(clientIDs, created.ID)
	}

	contractInputs := []contract.CreateContractInput{
		{ClientID: clientIDs[0], Name: "Maintenance annuelle", Amount: 1200.50},
		{ClientID: clientIDs[0], Name: "Support premium", Amount: 890},
		{ClientID: clientIDs[1], Name: "Licence logicielle", Amount: 15000},
		{ClientID: clientIDs[2], Name: "Infogérance", Amount: 72000},
	}
	for _, in := range contractInputs {
		if _, err := contracts.CreateContract(ctx, in); err != nil {
			return fmt.Errorf("seed: contrat %s: %w", in.Name, err)
		}
	}

	prospectInputs := []prospect.CreateProspectInput{
		{
			Name:         "Boulangerie",
			StreetNumber: "10",
			StreetName:   "Metz",
			PostalCode:   "54390",
			City:         "Frouard",
			Phone:        "0696589632",
			Email:        "boulangerie@boulangerie.fr",
			Interest:     prospect.InterestYes,
		},
		{
			Name:         "Supermarché",
			StreetNumber: "101",
			StreetName:   "De La Resistance",
			PostalCode:   "54390",
			City:         "Frouard",
			Phone:        "0123456789",
			Email:        "supermarche@supermarche.fr",
			Interest:     prospect.InterestYes,
		},
	}
	dates := []string{"10/01/2021", "12/01/2024"}
	for i, in := range prospectInputs {
		visited, err := prospect.ParseDate(dates[i])
		if err != nil {
			return fmt.Errorf("seed: prospect %s: %w", in.Name, err)
		}
		in.ProspectedAt = visited
		if _, err := prospects.CreateProspect(ctx, in); err != nil {
			return fmt.Errorf("seed: prospect %s: %w", in.Name, err)
		}
	}

	return nil
}
