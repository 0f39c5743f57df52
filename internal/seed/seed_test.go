package seed

import (
	"context"
	"testing"

	"github.com/ogurasousui/codex-crm-clean-arch/internal/adapters/repository/memory"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/client"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/company"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/contract"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/prospect"
)

func TestDemo(t *testing.T) {
	t.Parallel()

	contractRepo := memory.NewContractRepository()
	clientRepo := memory.NewClientRepository(contractRepo)
	prospectRepo := memory.NewProspectRepository()
	checker := company.NewUnicityChecker(clientRepo, prospectRepo)

	clients := client.NewService(clientRepo, checker, nil)
	prospects := prospect.NewService(prospectRepo, checker, nil)
	contracts := contract.NewService(contractRepo, clientRepo, nil)

	ctx := context.Background()
	if err := Demo(ctx, clients, prospects, contracts); err != nil {
		t.Fatalf("Demo error: %v", err)
	}

	allClients := clients.ListClients(ctx)
	if len(allClients) != 3 {
		t.Fatalf("clients = %d, want 3", len(allClients))
	}
	if allClients[0].Name != "Apple" || allClients[1].Name != "IBM" || allClients[2].Name != "Microsoft" {
		t.Fatalf("unexpected client order: %+v", allClients)
	}

	allProspects := prospects.ListProspects(ctx)
	if len(allProspects) != 2 {
		t.Fatalf("prospects = %d, want 2", len(allProspects))
	}
	if allProspects[0].FormattedProspectedAt() != "10/01/2021" {
		t.Fatalf("unexpected prospection date: %s", allProspects[0].FormattedProspectedAt())
	}

	var ibmID int
	for _, c := range allClients {
		if c.Name == "IBM" {
			ibmID = c.ID
		}
	}
	if got := contracts.ContractsByClient(ctx, ibmID); len(got) != 2 {
		t.Fatalf("IBM contracts = %d, want 2", len(got))
	}
}

func TestDemo_FailsOnSecondRun(t *testing.T) {
	t.Parallel()

	contractRepo := memory.NewContractRepository()
	clientRepo := memory.NewClientRepository(contractRepo)
	prospectRepo := memory.NewProspectRepository()
	checker := company.NewUnicityChecker(clientRepo, prospectRepo)

	clients := client.NewService(clientRepo, checker, nil)
	prospects := prospect.NewService(prospectRepo, checker, nil)
	contracts := contract.NewService(contractRepo, clientRepo, nil)

	ctx := context.Background()
	if err := Demo(ctx, clients, prospects, contracts); err != nil {
		t.Fatalf("Demo error: %v", err)
	}
	if err := Demo(ctx, clients, prospects, contracts); err == nil {
		t.Fatal("second Demo run succeeded, want duplicate name error")
	}
}
