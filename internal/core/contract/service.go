package contract

import (
	"context"
	"strconv"

	"github.com/ogurasousui/codex-crm-clean-arch/internal/platform/logger"
)

// Service は契約に関するユースケースをまとめます。
type Service struct {
	repo    Repository
	clients ClientDirectory
	log     *logger.Logger
}

// UseCase は契約ユースケースの公開インターフェースです。
type UseCase interface {
	CreateContract(ctx context.Context, in CreateContractInput) (*Contract, error)
	UpdateContract(ctx context.Context, in UpdateContractInput) (*Contract, error)
	DeleteContract(ctx context.Context, in DeleteContractInput) bool
	GetContract(ctx context.Context, in GetContractInput) (*Contract, error)
	ContractsByClient(ctx context.Context, clientID int) []*Contract
	TableRows(ctx context.Context, clientID int) [][]string
}

// NewService は Service を生成します。log が nil の場合は何も出力しません。
func NewService(repo Repository, clients ClientDirectory, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{repo: repo, clients: clients, log: log}
}

// CreateContractInput は契約作成時の入力です。
type CreateContractInput struct {
	ClientID int
	Name     string
	Amount   float64
}

// UpdateContractInput は契約更新時の入力です。所属クライアントは
// 変更できません。
type UpdateContractInput struct {
	ID     int
	Name   string
	Amount float64
}

// DeleteContractInput は契約削除時の入力です。
type DeleteContractInput struct {
	ID int
}

// GetContractInput は契約取得時の入力です。
type GetContractInput struct {
	ID int
}

// CreateContract は新しい契約を作成します。所属クライアントの存在を
// 確認した上でリポジトリへ登録します。
func (s *Service) CreateContract(ctx context.Context, in CreateContractInput) (*Contract, error) {
	created, err := s.createContract(ctx, in)
	if err != nil {
		s.log.Error("échec création contrat", "client_id", in.ClientID, "nom", in.Name, "error", err)
		return nil, err
	}
	s.log.Info("contrat créé", "id", created.ID, "client_id", created.ClientID, "nom", created.Name)
	return created, nil
}

func (s *Service) createContract(ctx context.Context, in CreateContractInput) (*Contract, error) {
	c, err := New(in.ClientID, in.Name, in.Amount)
	if err != nil {
		return nil, err
	}
	if !s.clients.Exists(ctx, in.ClientID) {
		return nil, ErrClientNotFound
	}

	s.repo.Add(ctx, c)
	return c, nil
}

// UpdateContract は契約名と金額を再検証して更新します。検証途中で失敗した
// 場合、格納済みの状態は一切変化しません。
func (s *Service) UpdateContract(ctx context.Context, in UpdateContractInput) (*Contract, error) {
	updated, err := s.updateContract(ctx, in)
	if err != nil {
		s.log.Error("échec modification contrat", "id", in.ID, "error", err)
		return nil, err
	}
	s.log.Info("contrat modifié", "id", updated.ID, "nom", updated.Name)
	return updated, nil
}

func (s *Service) updateContract(ctx context.Context, in UpdateContractInput) (*Contract, error) {
	existing, ok := s.repo.FindByID(ctx, in.ID)
	if !ok {
		return nil, ErrContractNotFound
	}

	if err := existing.SetName(in.Name); err != nil {
		return nil, err
	}
	if err := existing.SetAmount(in.Amount); err != nil {
		return nil, err
	}

	if !s.repo.Update(ctx, existing) {
		return nil, ErrContractNotFound
	}
	return existing, nil
}

// DeleteContract は契約を削除します。対象が存在しない場合は何もせず
// false を返します。
func (s *Service) DeleteContract(ctx context.Context, in DeleteContractInput) bool {
	ok := s.repo.Delete(ctx, in.ID)
	if ok {
		s.log.Info("contrat supprimé", "id", in.ID)
	}
	return ok
}

// GetContract は ID で契約を取得します。
func (s *Service) GetContract(ctx context.Context, in GetContractInput) (*Contract, error) {
	c, ok := s.repo.FindByID(ctx, in.ID)
	if !ok {
		return nil, ErrContractNotFound
	}
	return c, nil
}

// ContractsByClient は指定クライアントの契約を登録順で返します。
func (s *Service) ContractsByClient(ctx context.Context, clientID int) []*Contract {
	return s.repo.FindByClientID(ctx, clientID)
}

// TableColumns は契約一覧の列見出しです。列順は固定です。
var TableColumns = []string{"ID", "Nom du Contrat", "Montant (€)"}

// TableRows は指定クライアントの契約を TableColumns の列順で構築します。
func (s *Service) TableRows(ctx context.Context, clientID int) [][]string {
	contracts := s.repo.FindByClientID(ctx, clientID)
	rows := make([][]string, 0, len(contracts))
	for _, c := range contracts {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Name,
			strconv.FormatFloat(c.Amount, 'f', 2, 64),
		})
	}
	return rows
}
