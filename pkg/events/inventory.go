package events

// FrameAvailabilityChecked is emitted after an availability check on a frame.
type FrameAvailabilityChecked struct {
	Base
	InventoryID       string `json:"inventory_id"`
	FrameCode         string `json:"frame_code"`
	Available         bool   `json:"available"`
	RequestedQuantity int    `json:"requested_quantity"`
	AvailableQuantity int    `json:"available_quantity"`
}

func (FrameAvailabilityChecked) Kind() Kind { return KindFrameAvailabilityChecked }

// LensAvailabilityChecked is emitted after an availability check on a lens.
type LensAvailabilityChecked struct {
	Base
	InventoryID       string `json:"inventory_id"`
	LensCode          string `json:"lens_code"`
	Available         bool   `json:"available"`
	RequestedQuantity int    `json:"requested_quantity"`
	AvailableQuantity int    `json:"available_quantity"`
}

func (LensAvailabilityChecked) Kind() Kind { return KindLensAvailabilityChecked }

// InventoryLevelLow is emitted when an acquisition leaves an item at or
// below its minimum stock level. ItemKind is "FRAME" or "LENS".
type InventoryLevelLow struct {
	Base
	InventoryID       string `json:"inventory_id"`
	ItemKind          string `json:"item_kind"`
	ItemCode          string `json:"item_code"`
	CurrentQuantity   int    `json:"current_quantity"`
	MinimumStockLevel int    `json:"minimum_stock_level"`
}

func (InventoryLevelLow) Kind() Kind { return KindInventoryLevelLow }

// FrameAcquired is emitted when frames are taken from inventory.
type FrameAcquired struct {
	Base
	InventoryID       string `json:"inventory_id"`
	FrameCode         string `json:"frame_code"`
	Quantity          int    `json:"quantity"`
	RemainingQuantity int    `json:"remaining_quantity"`
}

func (FrameAcquired) Kind() Kind { return KindFrameAcquired }

// LensAcquired is emitted when lenses are taken from inventory.
type LensAcquired struct {
	Base
	InventoryID       string `json:"inventory_id"`
	LensCode          string `json:"lens_code"`
	Quantity          int    `json:"quantity"`
	RemainingQuantity int    `json:"remaining_quantity"`
}

func (LensAcquired) Kind() Kind { return KindLensAcquired }

// FrameOrderedWithSupplier is emitted when frames are ordered from a supplier.
type FrameOrderedWithSupplier struct {
	Base
	SupplierOrderID string `json:"supplier_order_id"`
	FrameCode       string `json:"frame_code"`
	Quantity        int    `json:"quantity"`
	SupplierID      string `json:"supplier_id"`
}

func (FrameOrderedWithSupplier) Kind() Kind { return KindFrameOrderedWithSupplier }

// LensOrderedWithSupplier is emitted when lenses are ordered from a supplier.
type LensOrderedWithSupplier struct {
	Base
	SupplierOrderID string `json:"supplier_order_id"`
	LensCode        string `json:"lens_code"`
	Quantity        int    `json:"quantity"`
	SupplierID      string `json:"supplier_id"`
}

func (LensOrderedWithSupplier) Kind() Kind { return KindLensOrderedWithSupplier }
