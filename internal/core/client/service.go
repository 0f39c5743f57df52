package client

import (
	"context"
	"strconv"

	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/company"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/platform/logger"
)

// Service はクライアントに関するユースケースをまとめます。
type Service struct {
	repo    Repository
	unicity *company.UnicityChecker
	log     *logger.Logger
}

// UseCase はクライアントユースケースの公開インターフェースです。
type UseCase interface {
	CreateClient(ctx context.Context, in CreateClientInput) (*Client, error)
	UpdateClient(ctx context.Context, in UpdateClientInput) (*Client, error)
	DeleteClient(ctx context.Context, in DeleteClientInput) bool
	GetClient(ctx context.Context, in GetClientInput) (*Client, error)
	ListClients(ctx context.Context) []*Client
	TableRows(ctx context.Context) [][]string
}

// NewService は Service を生成します。log が nil の場合は何も出力しません。
func NewService(repo Repository, unicity *company.UnicityChecker, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{repo: repo, unicity: unicity, log: log}
}

// CreateClientInput はクライアント作成時の入力です。
type CreateClientInput struct {
	Name         string
	StreetNumber string
	StreetName   string
	PostalCode   string
	City         string
	Phone        string
	Email        string
	Notes        string
	Revenue      int64
	Headcount    int
}

// UpdateClientInput はクライアント更新時の入力です。全フィールドを
// 再検証して置き換えます。
type UpdateClientInput struct {
	ID           int
	Name         string
	StreetNumber string
	StreetName   string
	PostalCode   string
	City         string
	Phone        string
	Email        string
	Notes        string
	Revenue      int64
	Headcount    int
}

// DeleteClientInput はクライアント削除時の入力です。
type DeleteClientInput struct {
	ID int
}

// GetClientInput はクライアント取得時の入力です。
type GetClientInput struct {
	ID int
}

// CreateClient は新しいクライアントを作成します。raison sociale の重複、
// 住所と各フィールドの検証を経てリポジトリへ登録します。
func (s *Service) CreateClient(ctx context.Context, in CreateClientInput) (*Client, error) {
	created, err := s.createClient(ctx, in)
	if err != nil {
		s.log.Error("échec création client", "raison_sociale", in.Name, "error", err)
		return nil, err
	}
	s.log.Info("client créé", "id", created.ID, "raison_sociale", created.Name)
	return created, nil
}

func (s *Service) createClient(ctx context.Context, in CreateClientInput) (*Client, error) {
	if s.unicity.IsDuplicateName(ctx, in.Name, company.ExcludeNone) {
		return nil, company.NewValidationError("raisonSociale", "Cette raison sociale existe déjà")
	}

	addr, err := company.NewAddress(in.StreetNumber, in.StreetName, in.PostalCode, in.City)
	if err != nil {
		return nil, err
	}

	c, err := New(in.Name, addr, in.Phone, in.Email, in.Notes, in.Revenue, in.Headcount)
	if err != nil {
		return nil, err
	}

	s.repo.Add(ctx, c)
	return c, nil
}

// UpdateClient は既存クライアントの全フィールドを再検証して更新します。
// 検証途中で失敗した場合、格納済みの状態は一切変化しません。
func (s *Service) UpdateClient(ctx context.Context, in UpdateClientInput) (*Client, error) {
	updated, err := s.updateClient(ctx, in)
	if err != nil {
		s.log.Error("échec modification client", "id", in.ID, "error", err)
		return nil, err
	}
	s.log.Info("client modifié", "id", updated.ID, "raison_sociale", updated.Name)
	return updated, nil
}

func (s *Service) updateClient(ctx context.Context, in UpdateClientInput) (*Client, error) {
	if s.unicity.IsDuplicateName(ctx, in.Name, in.ID) {
		return nil, company.NewValidationError("raisonSociale", "Cette raison sociale existe déjà")
	}

	existing, ok := s.repo.FindByID(ctx, in.ID)
	if !ok {
		return nil, ErrClientNotFound
	}

	// FindByID は複製を返すため、以降のセッター失敗は格納済みの
	// クライアントへ波及しない。
	if err := existing.Address.SetStreetNumber(in.StreetNumber); err != nil {
		return nil, err
	}
	if err := existing.Address.SetStreetName(in.StreetName); err != nil {
		return nil, err
	}
	if err := existing.Address.SetPostalCode(in.PostalCode); err != nil {
		return nil, err
	}
	if err := existing.Address.SetCity(in.City); err != nil {
		return nil, err
	}
	if err := existing.SetName(in.Name); err != nil {
		return nil, err
	}
	if err := existing.SetPhone(in.Phone); err != nil {
		return nil, err
	}
	if err := existing.SetEmail(in.Email); err != nil {
		return nil, err
	}
	existing.SetNotes(in.Notes)
	if err := existing.SetRevenue(in.Revenue); err != nil {
		return nil, err
	}
	if err := existing.SetHeadcount(in.Headcount); err != nil {
		return nil, err
	}

	if !s.repo.Update(ctx, existing) {
		return nil, ErrClientNotFound
	}
	return existing, nil
}

// DeleteClient はクライアントとその保有契約を削除します。対象が存在しない
// 場合は何もせず false を返します。エラーは返しません。
func (s *Service) DeleteClient(ctx context.Context, in DeleteClientInput) bool {
	ok := s.repo.Delete(ctx, in.ID)
	if ok {
		s.log.Info("client supprimé", "id", in.ID)
	}
	return ok
}

// GetClient は ID でクライアントを取得します。
func (s *Service) GetClient(ctx context.Context, in GetClientInput) (*Client, error) {
	c, ok := s.repo.FindByID(ctx, in.ID)
	if !ok {
		return nil, ErrClientNotFound
	}
	return c, nil
}

// ListClients は全クライアントを raison sociale 順で返します。
func (s *Service) ListClients(ctx context.Context) []*Client {
	return s.repo.FindAll(ctx)
}

// TableColumns は一覧画面の列見出しです。列順は固定です。
var TableColumns = []string{"ID", "Raison Sociale", "Adresse", "Téléphone", "Email", "CA (€)", "Nb Employés"}

// TableRows は一覧表示用の行を TableColumns の列順で構築します。
// 返された行を書き換えてもリポジトリの状態には影響しません。
func (s *Service) TableRows(ctx context.Context) [][]string {
	clients := s.repo.FindAll(ctx)
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Name,
			c.Address.String(),
			c.Phone,
			c.Email,
			strconv.FormatInt(c.Revenue, 10),
			strconv.Itoa(c.Headcount),
		})
	}
	return rows
}
