package pagverde

// Charge lifecycle states
const (
	ChargeStatusPending  = "pending"
	ChargeStatusPaid     = "paid"
	ChargeStatusCanceled = "canceled"
	ChargeStatusRefunded = "refunded"
	ChargeStatusOverdue  = "overdue"
)

// Payment methods accepted by the platform
const (
	PaymentMethodBoleto     = "boleto"
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodPix        = "pix"
)

// Subscription lifecycle states
const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusSuspended = "suspended"
	SubscriptionStatusCanceled  = "canceled"
)

// Transfer lifecycle states
const (
	TransferStatusPending    = "pending"
	TransferStatusProcessing = "processing"
	TransferStatusDone       = "done"
	TransferStatusCanceled   = "canceled"
	TransferStatusFailed     = "failed"
)

// ListMeta carries the pagination block shared by list responses.
type ListMeta struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	TotalCount int `json:"total_count"`
}

// Address is a Brazilian postal address as the API represents it.
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	Country    string `json:"country,omitempty"`
}

// Customer is a payer registered under the company account. Document holds
// the CPF or CNPJ digits.
type Customer struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Document  string   `json:"document"`
	Phone     string   `json:"phone,omitempty"`
	Address   *Address `json:"address,omitempty"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

// Charge is a billable amount assigned to a customer. Amount is in centavos.
type Charge struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`
	Amount        int64  `json:"amount"`
	Description   string `json:"description,omitempty"`
	DueDate       string `json:"due_date,omitempty"`
	PaidAt        string `json:"paid_at,omitempty"`
	BoletoURL     string `json:"boleto_url,omitempty"`
	BoletoBarcode string `json:"boleto_barcode,omitempty"`
	PixQRCode     string `json:"pix_qr_code,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// Subscription is a recurring charge plan bound to a customer. Amount is in
// centavos per billing cycle.
type Subscription struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`
	Amount        int64  `json:"amount"`
	Interval      string `json:"interval"`
	Description   string `json:"description,omitempty"`
	NextBillingAt string `json:"next_billing_at,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// Payment is a settlement attempt against a charge.
type Payment struct {
	ID                string `json:"id"`
	ChargeID          string `json:"charge_id"`
	Status            string `json:"status"`
	Method            string `json:"method"`
	Amount            int64  `json:"amount"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
	CapturedAt        string `json:"captured_at,omitempty"`
	RefundedAt        string `json:"refunded_at,omitempty"`
	CreatedAt         string `json:"created_at"`
}

// BankAccount identifies a Brazilian bank account for payouts.
type BankAccount struct {
	BankCode       string `json:"bank_code"`
	Agency         string `json:"agency"`
	AgencyDigit    string `json:"agency_digit,omitempty"`
	Number         string `json:"number"`
	NumberDigit    string `json:"number_digit,omitempty"`
	Type           string `json:"type,omitempty"`
	HolderName     string `json:"holder_name,omitempty"`
	HolderDocument string `json:"holder_document,omitempty"`
}

// Transfer is a payout from the platform balance to a bank account. Amount
// is in centavos.
type Transfer struct {
	ID            string       `json:"id"`
	Status        string       `json:"status"`
	Amount        int64        `json:"amount"`
	BankAccount   *BankAccount `json:"bank_account,omitempty"`
	ScheduledTo   string       `json:"scheduled_to,omitempty"`
	TransferredAt string       `json:"transferred_at,omitempty"`
	CreatedAt     string       `json:"created_at"`
}

// Account is a sub-merchant account managed by the company.
type Account struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Document    string       `json:"document"`
	Status      string       `json:"status,omitempty"`
	BankAccount *BankAccount `json:"bank_account,omitempty"`
	CreatedAt   string       `json:"created_at"`
}

// Company is the merchant profile that owns the API token.
type Company struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	TradeName string   `json:"trade_name,omitempty"`
	Document  string   `json:"document"`
	Email     string   `json:"email,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Address   *Address `json:"address,omitempty"`
	LogoURL   string   `json:"logo_url,omitempty"`
	CreatedAt string   `json:"created_at"`
}

// CustomerList is the decode target for customer listings.
type CustomerList struct {
	Data []Customer `json:"data"`
	Meta ListMeta   `json:"meta"`
}

// ChargeList is the decode target for charge listings.
type ChargeList struct {
	Data []Charge `json:"data"`
	Meta ListMeta `json:"meta"`
}

// SubscriptionList is the decode target for subscription listings.
type SubscriptionList struct {
	Data []Subscription `json:"data"`
	Meta ListMeta       `json:"meta"`
}

// PaymentList is the decode target for payment listings.
type PaymentList struct {
	Data []Payment `json:"data"`
	Meta ListMeta  `json:"meta"`
}

// TransferList is the decode target for transfer listings.
type TransferList struct {
	Data []Transfer `json:"data"`
	Meta ListMeta   `json:"meta"`
}

// AccountList is the decode target for sub-account listings.
type AccountList struct {
	Data []Account `json:"data"`
	Meta ListMeta  `json:"meta"`
}
