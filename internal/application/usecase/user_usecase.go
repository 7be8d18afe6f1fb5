package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/domain/validation"
)

// Mensajes de usuario.
const (
	MsgUserNotFound       = "Usuário não encontrado."
	MsgUserEmailDuplicate = "E-mail já cadastrado."
)

// UserUseCase casos de uso CRUD para usuarios. Las contraseñas se guardan con bcrypt.
type UserUseCase struct {
	repo       repository.UserRepository
	bcryptCost int
}

// NewUserUseCase construye el caso de uso. bcryptCost fuera de rango usa bcrypt.DefaultCost.
func NewUserUseCase(repo repository.UserRepository, bcryptCost int) *UserUseCase {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserUseCase{repo: repo, bcryptCost: bcryptCost}
}

// List lista usuarios paginado.
func (uc *UserUseCase) List(ctx context.Context, p dto.PageRequest) (*dto.PageResult[dto.UserResponse], error) {
	p.Normalize()
	list, total, err := uc.repo.List(ctx, repository.Page{Limit: p.PageSize, Offset: p.Offset()})
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, ToUserResponse(u))
	}
	res := dto.NewPageResult(out, total, p)
	return &res, nil
}

// GetByID obtiene un usuario; NotFoundError si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	u, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToUserResponse(u)
	return &out, nil
}

// Create valida, verifica e-mail único, hashea la contraseña y persiste.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	data := userData(in.Name, in.Email, in.AccessType)
	data[validation.FieldPassword] = in.Password
	if err := validation.Check(ctx, data, validation.UserCreate()); err != nil {
		return nil, err
	}
	email := normalizeEmail(in.Email)
	if err := uc.ensureUniqueEmail(ctx, email, 0); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		AccessType:   int(*in.AccessType),
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewGeneric(MsgUserEmailDuplicate)
		}
		return nil, err
	}
	out := ToUserResponse(u)
	return &out, nil
}

// Update reemplaza nombre, e-mail y nivel; la contraseña solo cambia si viene informada.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) error {
	rules := validation.UserUpdate()
	data := userData(in.Name, in.Email, in.AccessType)
	if strings.TrimSpace(in.Password) != "" {
		rules[validation.FieldPassword] = []validation.Rule{validation.Required(validation.MsgUserPasswordRequired)}
		data[validation.FieldPassword] = in.Password
	}
	if err := validation.Check(ctx, data, rules); err != nil {
		return err
	}
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	email := normalizeEmail(in.Email)
	if err := uc.ensureUniqueEmail(ctx, email, id); err != nil {
		return err
	}
	u := &entity.User{
		ID:         id,
		Name:       strings.TrimSpace(in.Name),
		Email:      email,
		AccessType: int(*in.AccessType),
	}
	if strings.TrimSpace(in.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
		if err != nil {
			return err
		}
		u.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.NewGeneric(MsgUserEmailDuplicate)
		}
		return err
	}
	return nil
}

// Delete elimina el usuario.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrReferenced) {
			return domain.NewGeneric("Não é possível excluir o usuário, pois existem movimentações associadas a ele.")
		}
		return err
	}
	return nil
}

func (uc *UserUseCase) find(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, domain.NewNotFound(MsgUserNotFound)
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NewNotFound(MsgUserNotFound)
	}
	return u, nil
}

func (uc *UserUseCase) ensureUniqueEmail(ctx context.Context, email string, selfID int64) error {
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.NewGeneric(MsgUserEmailDuplicate)
	}
	return nil
}

func userData(name, email string, accessType *int64) validation.Data {
	data := validation.Data{
		validation.FieldName:  name,
		validation.FieldEmail: email,
	}
	if accessType != nil {
		data[validation.FieldAccessType] = *accessType
	}
	return data
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ToUserResponse convierte la entidad a DTO (sin contraseña).
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, AccessType: u.AccessType}
}
