package constant

// MovementType classifies the cause of a stock movement.
type MovementType string

const (
	MovementAdjustment     MovementType = "adjustment"
	MovementPurchase       MovementType = "purchase"
	MovementSale           MovementType = "sale"
	MovementTransferIn     MovementType = "transfer_in"
	MovementTransferOut    MovementType = "transfer_out"
	MovementReturn         MovementType = "return"
	MovementSupplierReturn MovementType = "supplier_return"
	MovementDamage         MovementType = "damage"
	MovementCorrection     MovementType = "correction"
)

// ReferenceType links a movement to the entity that caused it.
type ReferenceType string

const (
	ReferenceSale            ReferenceType = "sale"
	ReferencePurchaseInvoice ReferenceType = "purchase_invoice"
	ReferenceSupplierReturn  ReferenceType = "supplier_return"
	ReferenceStockConflict   ReferenceType = "stock_conflict"
)
