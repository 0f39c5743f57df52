package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/client"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/company"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/contract"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/prospect"
)

type services struct {
	clients   *client.Service
	prospects *prospect.Service
	contracts *contract.Service
	contractR *ContractRepository
}

func newServices() services {
	contractRepo := NewContractRepository()
	clientRepo := NewClientRepository(contractRepo)
	prospectRepo := NewProspectRepository()
	checker := company.NewUnicityChecker(clientRepo, prospectRepo)

	return services{
		clients:   client.NewService(clientRepo, checker, nil),
		prospects: prospect.NewService(prospectRepo, checker, nil),
		contracts: contract.NewService(contractRepo, clientRepo, nil),
		contractR: contractRepo,
	}
}

func clientInput(name string) client.CreateClientInput {
	return client.CreateClientInput{
		Name:         name,
		StreetNumber: "10",
		StreetName:   "Victor Hugo",
		PostalCode:   "54000",
		City:         "Nancy",
		Phone:        "0778663083",
		Email:        "contact@exemple.fr",
		Revenue:      5000,
		Headcount:    10,
	}
}

func prospectInput(name string) prospect.CreateProspectInput {
	return prospect.CreateProspectInput{
		Name:         name,
		StreetNumber: "10",
		StreetName:   "Metz",
		PostalCode:   "54390",
		City:         "Frouard",
		Phone:        "0696589632",
		Email:        "boulangerie@boulangerie.fr",
		ProspectedAt: time.Date(2021, time.January, 10, 0, 0, 0, 0, time.UTC),
		Interest:     prospect.InterestYes,
	}
}

func TestDeleteClientCascadesContracts(t *testing.T) {
	t.Parallel()

	s := newServices()
	ctx := context.Background()

	created, err := s.clients.CreateClient(ctx, clientInput("IBM"))
	if err != nil {
		t.Fatalf("CreateClient error: %v", err)
	}

	for _, in := range []contract.CreateContractInput{
		{ClientID: created.ID, Name: "Maintenance", Amount: 100},
		{ClientID: created.ID, Name: "Support", Amount: 200},
	} {
		if _, err := s.contracts.CreateContract(ctx, in); err != nil {
			t.Fatalf("CreateContract error: %v", err)
		}
	}

	if !s.clients.DeleteClient(ctx, client.DeleteClientInput{ID: created.ID}) {
		t.Fatal("DeleteClient = false, want true")
	}

	if got := s.contracts.ContractsByClient(ctx, created.ID); len(got) != 0 {
		t.Fatalf("contracts after delete = %d, want 0", len(got))
	}
	if _, err := s.clients.GetClient(ctx, client.GetClientInput{ID: created.ID}); !errors.Is(err, client.ErrClientNotFound) {
		t.Fatalf("GetClient error = %v, want ErrClientNotFound", err)
	}
}

func TestUnicityAcrossCollections(t *testing.T) {
	t.Parallel()

	s := newServices()
	ctx := context.Background()

	if _, err := s.clients.CreateClient(ctx, clientInput("IBM")); err != nil {
		t.Fatalf("CreateClient error: %v", err)
	}

	_, err := s.prospects.CreateProspect(ctx, prospectInput("ibm"))
	var verr *company.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if verr.Field != "raisonSociale" {
		t.Fatalf("Field = %q, want %q", verr.Field, "raisonSociale")
	}

	if _, err := s.prospects.CreateProspect(ctx, prospectInput("Boulangerie")); err != nil {
		t.Fatalf("CreateProspect error: %v", err)
	}
	if _, err := s.clients.CreateClient(ctx, clientInput("BOULANGERIE")); err == nil {
		t.Fatal("duplicate across collections accepted")
	}
}

func TestDeleteContractViaService(t *testing.T) {
	t.Parallel()

	s := newServices()
	ctx := context.Background()

	created, err := s.clients.CreateClient(ctx, clientInput("IBM"))
	if err != nil {
		t.Fatalf("CreateClient error: %v", err)
	}
	ct, err := s.contracts.CreateContract(ctx, contract.CreateContractInput{ClientID: created.ID, Name: "Maintenance", Amount: 100})
	if err != nil {
		t.Fatalf("CreateContract error: %v", err)
	}

	if !s.contracts.DeleteContract(ctx, contract.DeleteContractInput{ID: ct.ID}) {
		t.Fatal("DeleteContract = false, want true")
	}
	if got := s.contracts.ContractsByClient(ctx, created.ID); len(got) != 0 {
		t.Fatalf("contracts = %d, want 0", len(got))
	}
	if _, err := s.clients.GetClient(ctx, client.GetClientInput{ID: created.ID}); err != nil {
		t.Fatalf("client should survive contract delete: %v", err)
	}
}

func TestUpdateFailureKeepsStoredState(t *testing.T) {
	t.Parallel()

	s := newServices()
	ctx := context.Background()

	created, err := s.clients.CreateClient(ctx, clientInput("IBM"))
	if err != nil {
		t.Fatalf("CreateClient error: %v", err)
	}

	_, err = s.clients.UpdateClient(ctx, client.UpdateClientInput{
		ID:           created.ID,
		Name:         "IBM France",
		StreetNumber: "10",
		StreetName:   "Victor Hugo",
		PostalCode:   "54000",
		City:         "Nancy",
		Phone:        "0778663083",
		Email:        "contact@exemple.fr",
		Revenue:      100,
		Headcount:    10,
	})
	if err == nil {
		t.Fatal("UpdateClient succeeded, want error")
	}

	stored, gerr := s.clients.GetClient(ctx, client.GetClientInput{ID: created.ID})
	if gerr != nil {
		t.Fatalf("GetClient error: %v", gerr)
	}
	if stored.Name != "IBM" || stored.Revenue != 5000 {
		t.Fatalf("stored client mutated: %+v", stored)
	}
}
