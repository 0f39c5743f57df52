package prospect

import (
	"context"
	"strconv"
	"time"

	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/company"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/platform/logger"
)

// Service はプロスペクトに関するユースケースをまとめます。
type Service struct {
	repo    Repository
	unicity *company.UnicityChecker
	log     *logger.Logger
}

// UseCase はプロスペクトユースケースの公開インターフェースです。
type UseCase interface {
	CreateProspect(ctx context.Context, in CreateProspectInput) (*Prospect, error)
	UpdateProspect(ctx context.Context, in UpdateProspectInput) (*Prospect, error)
	DeleteProspect(ctx context.Context, in DeleteProspectInput) bool
	GetProspect(ctx context.Context, in GetProspectInput) (*Prospect, error)
	ListProspects(ctx context.Context) []*Prospect
	TableRows(ctx context.Context) [][]string
}

// NewService は Service を生成します。log が nil の場合は何も出力しません。
func NewService(repo Repository, unicity *company.UnicityChecker, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{repo: repo, unicity: unicity, log: log}
}

// CreateProspectInput はプロスペクト作成時の入力です。
type CreateProspectInput struct {
	Name         string
	StreetNumber string
	StreetName   string
	PostalCode   string
	City         string
	Phone        string
	Email        string
	Notes        string
	ProspectedAt time.Time
	Interest     Interest
}

// UpdateProspectInput はプロスペクト更新時の入力です。全フィールドを
// 再検証して置き換えます。
type UpdateProspectInput struct {
	ID           int
	Name         string
	StreetNumber string
	StreetName   string
	PostalCode   string
	City         string
	Phone        string
	Email        string
	Notes        string
	ProspectedAt time.Time
	Interest     Interest
}

// DeleteProspectInput はプロスペクト削除時の入力です。
type DeleteProspectInput struct {
	ID int
}

// GetProspectInput はプロスペクト取得時の入力です。
type GetProspectInput struct {
	ID int
}

// CreateProspect は新しいプロスペクトを作成します。raison sociale の重複、
// 住所と各フィールドの検証を経てリポジトリへ登録します。
func (s *Service) CreateProspect(ctx context.Context, in CreateProspectInput) (*Prospect, error) {
	created, err := s.createProspect(ctx, in)
	if err != nil {
		s.log.Error("échec création prospect", "raison_sociale", in.Name, "error", err)
		return nil, err
	}
	s.log.Info("prospect créé", "id", created.ID, "raison_sociale", created.Name)
	return created, nil
}

func (s *Service) createProspect(ctx context.Context, in CreateProspectInput) (*Prospect, error) {
	if s.unicity.IsDuplicateName(ctx, in.Name, company.ExcludeNone) {
		return nil, company.NewValidationError("raisonSociale", "Cette raison sociale existe déjà")
	}

	addr, err := company.NewAddress(in.StreetNumber, in.StreetName, in.PostalCode, in.City)
	if err != nil {
		return nil, err
	}

	p, err := New(in.Name, addr, in.Phone, in.Email, in.Notes, in.ProspectedAt, in.Interest)
	if err != nil {
		return nil, err
	}

	s.repo.Add(ctx, p)
	return p, nil
}

// UpdateProspect は既存プロスペクトの全フィールドを再検証して更新します。
// 検証途中で失敗した場合、格納済みの状態は一切変化しません。
func (s *Service) UpdateProspect(ctx context.Context, in UpdateProspectInput) (*Prospect, error) {
	updated, err := s.updateProspect(ctx, in)
	if err != nil {
		s.log.Error("échec modification prospect", "id", in.ID, "error", err)
		return nil, err
	}
	s.log.Info("prospect modifié", "id", updated.ID, "raison_sociale", updated.Name)
	return updated, nil
}

func (s *Service) updateProspect(ctx context.Context, in UpdateProspectInput) (*Prospect, error) {
	if s.unicity.IsDuplicateName(ctx, in.Name, in.ID) {
		return nil, company.NewValidationError("raisonSociale", "Cette raison sociale existe déjà")
	}

	existing, ok := s.repo.FindByID(ctx, in.ID)
	if !ok {
		return nil, ErrProspectNotFound
	}

	// FindByID は複製を返すため、以降のセッター失敗は格納済みの
	// プロスペクトへ波及しない。
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
	if err := existing.SetProspectedAt(in.ProspectedAt); err != nil {
		return nil, err
	}
	if err := existing.SetInterest(in.Interest); err != nil {
		return nil, err
	}

	if !s.repo.Update(ctx, existing) {
		return nil, ErrProspectNotFound
	}
	return existing, nil
}

// DeleteProspect はプロスペクトを削除します。対象が存在しない場合は
// 何もせず false を返します。エラーは返しません。
func (s *Service) DeleteProspect(ctx context.Context, in DeleteProspectInput) bool {
	ok := s.repo.Delete(ctx, in.ID)
	if ok {
		s.log.Info("prospect supprimé", "id", in.ID)
	}
	return ok
}

// GetProspect は ID でプロスペクトを取得します。
func (s *Service) GetProspect(ctx context.Context, in GetProspectInput) (*Prospect, error) {
	p, ok := s.repo.FindByID(ctx, in.ID)
	if !ok {
		return nil, ErrProspectNotFound
	}
	return p, nil
}

// ListProspects は全プロスペクトを raison sociale 順で返します。
func (s *Service) ListProspects(ctx context.Context) []*Prospect {
	return s.repo.FindAll(ctx)
}

// TableColumns は一覧画面の列見出しです。列順は固定です。
var TableColumns = []string{"ID", "Raison Sociale", "Adresse", "Téléphone", "Email", "Date Prospection", "Intéressé"}

// TableRows は一覧表示用の行を TableColumns の列順で構築します。
// 返された行を書き換えてもリポジトリの状態には影響しません。
func (s *Service) TableRows(ctx context.Context) [][]string {
	prospects := s.repo.FindAll(ctx)
	rows := make([][]string, 0, len(prospects))
	for _, p := range prospects {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.Address.String(),
			p.Phone,
			p.Email,
			p.FormattedProspectedAt(),
			p.Interest.Label(),
		})
	}
	return rows
}
