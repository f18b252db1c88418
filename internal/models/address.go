package models

import (
	"time"

	"github.com/google/uuid"
)

type AddressType string

const (
	AddressTypeHome   AddressType = "Home"
	AddressTypeOffice AddressType = "Office"
	AddressTypeSite   AddressType = "Site"
	AddressTypeOther  AddressType = "Other"
)

type Address struct {
	ID           uuid.UUID   `json:"id"`
	UserID       string      `json:"user_id"`
	FullName     string      `json:"full_name" validate:"required"`
	Mobile       string      `json:"mobile" validate:"required"`
	Pincode      string      `json:"pincode" validate:"required"`
	State        string      `json:"state" validate:"required"`
	City         string      `json:"city" validate:"required"`
	Locality     string      `json:"locality" validate:"required"`
	FlatBuilding string      `json:"flat_building" validate:"required"`
	Landmark     string      `json:"landmark,omitempty"`
	AddressType  AddressType `json:"address_type" validate:"required,oneof=Home Office Site Other"`
	Latitude     float64     `json:"latitude"`
	Longitude    float64     `json:"longitude"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type CreateAddressRequest struct {
	FullName     string      `json:"full_name" validate:"required"`
	Mobile       string      `json:"mobile" validate:"required,min=10,max=13"`
	Pincode      string      `json:"pincode" validate:"required,len=6,numeric"`
	State        string      `json:"state" validate:"required"`
	City         string      `json:"city" validate:"required"`
	Locality     string      `json:"locality" validate:"required"`
	FlatBuilding string      `json:"flat_building" validate:"required"`
	Landmark     string      `json:"landmark,omitempty"`
	AddressType  AddressType `json:"address_type" validate:"required,oneof=Home Office Site Other"`
	Latitude     float64     `json:"latitude" validate:"omitempty,latitude"`
	Longitude    float64     `json:"longitude" validate:"omitempty,longitude"`
}

type UpdateAddressRequest struct {
	FullName     *string      `json:"full_name,omitempty"`
	Mobile       *string      `json:"mobile,omitempty" validate:"omitempty,min=10,max=13"`
	Pincode      *string      `json:"pincode,omitempty" validate:"omitempty,len=6,numeric"`
	State        *string      `json:"state,omitempty"`
	City         *string      `json:"city,omitempty"`
	Locality     *string      `json:"locality,omitempty"`
	FlatBuilding *string      `json:"flat_building,omitempty"`
	Landmark     *string      `json:"landmark,omitempty"`
	AddressType  *AddressType `json:"address_type,omitempty" validate:"omitempty,oneof=Home Office Site Other"`
	Latitude     *float64     `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64     `json:"longitude,omitempty" validate:"omitempty,longitude"`
}
