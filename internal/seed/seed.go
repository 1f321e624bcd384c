// Package seed loads reference data and bootstraps administrators.
package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"trainboard/internal/model"
	"trainboard/internal/service"
)

// Stations is the reference station list.
var Stations = []model.Station{
	{Name: "Київ-Пасажирський", Code: "KYIV", City: "Київ", Country: model.DefaultCountry},
	{Name: "Львів", Code: "LVIV", City: "Львів", Country: model.DefaultCountry},
	{Name: "Одеса-Головна", Code: "ODES", City: "Одеса", Country: model.DefaultCountry},
	{Name: "Харків-Пасажирський", Code: "KHAR", City: "Харків", Country: model.DefaultCountry},
	{Name: "Дніпро-Головний", Code: "DNIP", City: "Дніпро", Country: model.DefaultCountry},
}

// Trains is the reference train list.
var Trains = []model.Train{
	{Number: "743", Name: "Інтерсіті+ Київ – Львів", Type: model.TrainTypeHighSpeed},
	{Number: "91", Name: "Львівський експрес", Type: model.TrainTypeIntercity},
	{Number: "105", Name: "Одеса – Київ", Type: model.TrainTypeIntercity},
	{Number: "63", Name: "Харків – Дніпро", Type: model.TrainTypeRegional},
	{Number: "6401", Name: "Київ – Фастів", Type: model.TrainTypeLocal},
}

// Result counts what a seed run did.
type Result struct {
	Created int
	Skipped int
}

// Reference inserts the reference stations and trains. Rows whose unique
// code or number already exists are left untouched.
func Reference(ctx context.Context, gormDB *gorm.DB) (Result, error) {
	var res Result
	err := gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range Stations {
			station := s
			created := tx.Where(model.Station{Code: station.Code}).FirstOrCreate(&station)
			if created.Error != nil {
				return fmt.Errorf("seed station %s: %w", station.Code, created.Error)
			}
			res.count(created.RowsAffected)
		}
		for _, t := range Trains {
			train := t
			created := tx.Where(model.Train{Number: train.Number}).FirstOrCreate(&train)
			if created.Error != nil {
				return fmt.Errorf("seed train %s: %w", train.Number, created.Error)
			}
			res.count(created.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func (r *Result) count(rowsAffected int64) {
	if rowsAffected > 0 {
		r.Created++
	} else {
		r.Skipped++
	}
}

// Admin creates an administrator, or promotes the existing profile with that
// email and resets its password. It reports whether a new profile was created.
func Admin(ctx context.Context, profiles service.ProfileService, email, password string) (bool, error) {
	existing, err := profiles.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("find profile: %w", err)
	}

	if existing == nil {
		if _, err := profiles.Create(ctx, model.ProfileInput{
			Email:    email,
			Password: password,
			Role:     model.RoleAdmin,
		}); err != nil {
			return false, fmt.Errorf("create admin: %w", err)
		}
		return true, nil
	}

	role := model.RoleAdmin
	if _, err := profiles.Update(ctx, existing.ID, model.ProfilePatch{
		Password: &password,
		Role:     &role,
	}); err != nil {
		return false, fmt.Errorf("promote admin: %w", err)
	}
	return false, nil
}
