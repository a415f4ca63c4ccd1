package order

import "logistics/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:             o.ID,
		SenderName:     o.SenderName,
		SenderPhone:    o.SenderPhone,
		ReceiverName:   o.ReceiverName,
		ReceiverPhone:  o.ReceiverPhone,
		ShippingFee:    o.ShippingFee,
		Note:           o.Note,
		Status:         entities.OrderStatusType(o.Status),
		DeliveryTime:   o.DeliveryTime,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		DeletedAt:      o.DeletedAt,
		CargoID:        o.CargoID,
		OrderAddressID: o.OrderAddressID,
		DeliveryTypeID: o.DeliveryTypeID,
		SupervisorID:   o.SupervisorID,
	}
}

func RowToDomain(r *OrderRowDB) *entities.Order {
	if r == nil {
		return nil
	}

	order := ToDomain(&r.OrderDB)
	order.Cargo = &entities.Cargo{
		ID:        r.CargoID,
		Name:      r.CargoName,
		Weight:    r.CargoWeight,
		Dimension: r.CargoDimension,
		CreatedAt: r.CargoCreatedAt,
		UpdatedAt: r.CargoUpdatedAt,
	}
	order.OrderAddress = &entities.OrderAddress{
		ID:        r.OrderAddressID,
		Address:   r.Address,
		Longitude: r.AddressLongitude,
		Latitude:  r.AddressLatitude,
		CreatedAt: r.AddressCreatedAt,
		UpdatedAt: r.AddressUpdatedAt,
	}
	return order
}

func RowsToDomain(rows []OrderRowDB) []entities.Order {
	orders := make([]entities.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, *RowToDomain(&rows[i]))
	}
	return orders
}

func FromDomainModify(o *entities.OrderModify) *OrderModifyDB {
	if o == nil {
		return nil
	}
	orderModifyDB := &OrderModifyDB{
		ID:             o.ID,
		SenderName:     o.SenderName,
		SenderPhone:    o.SenderPhone,
		ReceiverName:   o.ReceiverName,
		ReceiverPhone:  o.ReceiverPhone,
		ShippingFee:    o.ShippingFee,
		Note:           o.Note,
		DeliveryTime:   o.DeliveryTime,
		CargoID:        o.CargoID,
		OrderAddressID: o.OrderAddressID,
		DeliveryTypeID: o.DeliveryTypeID,
		SupervisorID:   o.SupervisorID,
	}

	if o.Status != nil {
		status := o.Status.String()
		orderModifyDB.Status = &status
	}

	return orderModifyDB
}
