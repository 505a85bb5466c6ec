package postgres

import (
	"veraz/internal/domain/entity"
	"veraz/internal/infra/persistence/model"
)

func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.Password,
		Cuit:         m.Cuit,
		Role:         entity.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Password:  u.PasswordHash,
		Cuit:      u.Cuit,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toClientDomain(m *model.ClientModel) *entity.Client {
	if m == nil {
		return nil
	}

	client := &entity.Client{
		ID:        m.ID,
		DNI:       m.DNI,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Debts:     make([]*entity.Debt, 0, len(m.Debts)),
	}
	for i := range m.Debts {
		client.Debts = append(client.Debts, toDebtDomain(&m.Debts[i]))
	}

	return client
}

func toDebtDomain(m *model.DebtModel) *entity.Debt {
	if m == nil {
		return nil
	}

	debt := &entity.Debt{
		ID:          m.ID,
		Amount:      m.Amount,
		Description: m.Description,
		Status:      entity.DebtStatus(m.Status),
		ComercioID:  m.ComercioID,
		ClientID:    m.ClientID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Comercio != nil {
		debt.Comercio = &entity.DebtCommerce{Name: m.Comercio.Name}
	}

	return debt
}

func fromDebtDomain(d *entity.Debt) *model.DebtModel {
	return &model.DebtModel{
		ID:          d.ID,
		Amount:      d.Amount,
		Description: d.Description,
		Status:      d.Status.String(),
		ComercioID:  d.ComercioID,
		ClientID:    d.ClientID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
