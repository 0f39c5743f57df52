package prospect

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/company"
)

type fakeRepo struct {
	prospects []*Prospect
	nextID    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func (r *fakeRepo) Add(_ context.Context, p *Prospect) {
	p.ID = r.nextID
	r.nextID++
	r.prospects = append(r.prospects, p.Clone())
}

func (r *fakeRepo) Update(_ context.Context, p *Prospect) bool {
	for i, stored := range r.prospects {
		if stored.ID == p.ID {
			r.prospects[i] = p.Clone()
			return true
		}
	}
	return false
}

func (r *fakeRepo) Delete(_ context.Context, id int) bool {
	for i, stored := range r.prospects {
		if stored.ID == id {
			r.prospects = append(r.prospects[:i], r.prospects[i+1:]...)
			return true
		}
	}
	return false
}

func (r *fakeRepo) FindByID(_ context.Context, id int) (*Prospect, bool) {
	for _, stored := range r.prospects {
		if stored.ID == id {
			return stored.Clone(), true
		}
	}
	return nil, false
}

func (r *fakeRepo) FindAll(_ context.Context) []*Prospect {
	out := make([]*Prospect, 0, len(r.prospects))
	for _, stored := range r.prospects {
		out = append(out, stored.Clone())
	}
	return out
}

func (r *fakeRepo) NameRecords(_ context.Context) []company.NameRecord {
	records := make([]company.NameRecord, 0, len(r.prospects))
	for _, stored := range r.prospects {
		records = append(records, company.NameRecord{ID: stored.ID, Name: stored.Name})
	}
	return records
}

type staticNames struct {
	records []company.NameRecord
}

func (s staticNames) NameRecords(_ context.Context) []company.NameRecord {
	return s.records
}

func newTestService(repo *fakeRepo, clients ...company.NameRecord) *Service {
	checker := company.NewUnicityChecker(repo, staticNames{records: clients})
	return NewService(repo, checker, nil)
}

func validInput(name string) CreateProspectInput {
	return CreateProspectInput{
		Name:         name,
		StreetNumber: "10",
		StreetName:   "Metz",
		PostalCode:   "54390",
		City:         "Frouard",
		Phone:        "0696589632",
		Email:        "boulangerie@boulangerie.fr",
		Notes:        "",
		ProspectedAt: time.Date(2021, time.January, 10, 0, 0, 0, 0, time.UTC),
		Interest:     InterestYes,
	}
}

func TestService_CreateProspect_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo)

	created, err := svc.CreateProspect(context.Background(), validInput("Boulangerie"))
	if err != nil {
		t.Fatalf("CreateProspect error: %v", err)
	}

	if created.ID != 1 {
		t.Fatalf("ID = %d, want 1", created.ID)
	}
	if created.Name != "Boulangerie" || created.Interest != InterestYes {
		t.Fatalf("unexpected prospect: %+v", created)
	}

	if _, ok := repo.FindByID(context.Background(), created.ID); !ok {
		t.Fatal("prospect was not persisted")
	}
}

func TestService_CreateProspect_DuplicateName(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo)

	if _, err := svc.CreateProspect(context.Background(), validInput("Boulangerie")); err != nil {
		t.Fatalf("CreateProspect error: %v", err)
	}

	_, err := svc.CreateProspect(context.Background(), validInput("BOULANGERIE"))

	var verr *company.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if verr.Field != "raisonSociale" {
		t.Fatalf("Field = %q, want %q", verr.Field, "raisonSociale")
	}
	if got := len(repo.FindAll(context.Background())); got != 1 {
		t.Fatalf("stored prospects = %d, want 1", got)
	}
}

func TestService_CreateProspect_DuplicateAgainstClients(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo, company.NameRecord{ID: 1, Name: "ibm"})

	_, err := svc.CreateProspect(context.Background(), validInput("IBM"))

	var verr *company.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if verr.Field != "raisonSociale" {
		t.Fatalf("Field = %q, want %q", verr.Field, "raisonSociale")
	}
}

func TestService_CreateProspect_InvalidDate(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo)

	in := validInput("Boulangerie")
	in.ProspectedAt = time.Time{}

	_, err := svc.CreateProspect(context.Background(), in)

	var verr *company.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if verr.Field != "dateProspection" {
		t.Fatalf("Field = %q, want %q", verr.Field, "dateProspection")
	}
	if got := len(repo.FindAll(context.Background())); got != 0 {
		t.Fatalf("stored prospects = %d, want 0", got)
	}
}

func updateInput(id int, name string) UpdateProspectInput {
	return UpdateProspectInput{
		ID:           id,
		Name:         name,
		StreetNumber: "101",
		StreetName:   "De La Resistance",
		PostalCode:   "54390",
		City:         "Frouard",
		Phone:        "0123456789",
		Email:        "supermarche@supermarche.fr",
		Notes:        "relance prévue",
		ProspectedAt: time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC),
		Interest:     InterestNo,
	}
}

func TestService_UpdateProspect_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo)

	created, err := svc.CreateProspect(context.Background(), validInput("Boulangerie"))
	if err != nil {
		t.Fatalf("CreateProspect error: %v", err)
	}

	updated, err := svc.UpdateProspect(context.Background(), updateInput(created.ID, "Supermarché"))
	if err != nil {
		t.Fatalf("UpdateProspect error: %v", err)
	}

	if updated.Name != "Supermarché" || updated.Interest != InterestNo {
		t.Fatalf("unexpected prospect: %+v", updated)
	}

	stored, ok := repo.FindByID(context.Background(), created.ID)
	if !ok {
		t.Fatal("prospect disappeared")
	}
	if stored.Name != "Supermarché" || stored.FormattedProspectedAt() != "12/01/2024" {
		t.Fatalf("stored prospect not updated: %+v", stored)
	}
}

func TestService_UpdateProspect_SelfRenameAllowed(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo)

	created, err := svc.CreateProspect(context.Background(), validInput("Boulangerie"))
	if err != nil {
		t.Fatalf("CreateProspect error: %v", err)
	}

	if _, err := svc.UpdateProspect(context.Background(), updateInput(created.ID, "BOULANGERIE")); err != nil {
		t.Fatalf("self rename rejected: %v", err)
	}
}

func TestService_UpdateProspect_NotFound(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.UpdateProspect(context.Background(), updateInput(42, "Boulangerie"))
	if !errors.Is(err, ErrProspectNotFound) {
		t.Fatalf("error = %v, want ErrProspectNotFound", err)
	}
}

func TestService_UpdateProspect_FailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo)

	created, err := svc.CreateProspect(context.Background(), validInput("Boulangerie"))
	if err != nil {
		t.Fatalf("CreateProspect error: %v", err)
	}

	in := updateInput(created.ID, "Supermarché")
	in.Interest = Interest("invalide")

	if _, err := svc.UpdateProspect(context.Background(), in); err == nil {
		t.Fatal("UpdateProspect succeeded, want error")
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.Name != "Boulangerie" || stored.Interest != InterestYes {
		t.Fatalf("stored prospect mutated: %+v", stored)
	}
}

func TestService_DeleteProspect(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo)

	created, err := svc.CreateProspect(context.Background(), validInput("Boulangerie"))
	if err != nil {
		t.Fatalf("CreateProspect error: %v", err)
	}

	if !svc.DeleteProspect(context.Background(), DeleteProspectInput{ID: created.ID}) {
		t.Fatal("DeleteProspect = false, want true")
	}
	if svc.DeleteProspect(context.Background(), DeleteProspectInput{ID: created.ID}) {
		t.Fatal("second DeleteProspect = true, want false")
	}
}

func TestService_GetProspect_NotFound(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.GetProspect(context.Background(), GetProspectInput{ID: 7})
	if !errors.Is(err, ErrProspectNotFound) {
		t.Fatalf("error = %v, want ErrProspectNotFound", err)
	}
}

func TestService_TableRows(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo)

	if _, err := svc.CreateProspect(context.Background(), validInput("Boulangerie")); err != nil {
		t.Fatalf("CreateProspect error: %v", err)
	}

	rows := svc.TableRows(context.Background())
	want := [][]string{
		{"1", "Boulangerie", "10 Metz 54390 Frouard", "0696589632", "boulangerie@boulangerie.fr", "10/01/2021", "Oui"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("TableRows = %v, want %v", rows, want)
	}
}
