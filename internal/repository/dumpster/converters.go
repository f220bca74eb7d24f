package dumpster

import (
	"rolloff/internal/entities"
)

func ToDomain(d *DumpsterDB) *entities.Dumpster {
	if d == nil {
		return nil
	}

	return &entities.Dumpster{
		ID:             d.ID,
		Name:           d.Name,
		Status:         entities.DumpsterStatusType(d.Status),
		CurrentOrderID: d.CurrentOrderID,
		Address:        d.Address,
		Latitude:       d.Latitude,
		Longitude:      d.Longitude,
		LastAssignedAt: d.LastAssignedAt,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func FromDomainModify(dumpsterModify *entities.DumpsterModify) *DumpsterModifyDB {
	if dumpsterModify == nil {
		return nil
	}
	dumpsterDB := &DumpsterModifyDB{}

	if dumpsterModify.ID != nil {
		dumpsterDB.ID = dumpsterModify.ID
	}
	if dumpsterModify.Name != nil {
		dumpsterDB.Name = dumpsterModify.Name
	}
	if dumpsterModify.Status != nil {
		status := dumpsterModify.Status.String()
		dumpsterDB.Status = &status
	}

	return dumpsterDB
}

func ToDomainList(dumpstersDB []DumpsterDB) []entities.Dumpster {
	if len(dumpstersDB) == 0 {
		return []entities.Dumpster{}
	}

	result := make([]entities.Dumpster, len(dumpstersDB))
	for i, dumpsterDB := range dumpstersDB {
		result[i] = *ToDomain(&dumpsterDB)
	}
	return result
}
