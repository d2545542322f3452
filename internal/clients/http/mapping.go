package http

import (
	"github.com/iftm/clients/internal/clients/domain"
	"github.com/iftm/clients/pkg/clientsdk"
)

func toDTO(c domain.Client) clientsdk.ClientDTO {
	return clientsdk.ClientDTO{
		ID:        c.ID,
		Name:      c.Name,
		CPF:       c.CPF,
		Income:    c.Income,
		BirthDate: c.BirthDate.UTC(),
		Children:  c.Children,
	}
}

func fromDTO(d clientsdk.ClientDTO) domain.Client {
	return domain.Client{
		Name:      d.Name,
		CPF:       d.CPF,
		Income:    d.Income,
		BirthDate: d.BirthDate.UTC(),
		Children:  d.Children,
	}
}

func toPatch(req clientsdk.UpdateClientRequest) domain.ClientPatch {
	return domain.ClientPatch{
		Name:      req.Name,
		CPF:       req.CPF,
		Income:    req.Income,
		BirthDate: req.BirthDate,
		Children:  req.Children,
	}
}

func toPageDTO(p domain.Page[domain.Client]) clientsdk.Page[clientsdk.ClientDTO] {
	dto := domain.MapPage(p, toDTO)
	return clientsdk.Page[clientsdk.ClientDTO]{
		Content:          dto.Content,
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages(),
		Number:           p.Number,
		Size:             p.Size,
		NumberOfElements: len(dto.Content),
		First:            p.IsFirst(),
		Last:             p.IsLast(),
		Empty:            len(dto.Content) == 0,
	}
}
