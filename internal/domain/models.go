package domain

import (
	"math"
	"time"
)

type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	HashedPassword string `json:"-"`
	Role           string `json:"role"`
}

type Profile struct {
	UserID      int64       `json:"userId"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Zip         string      `json:"zip"`
	AccountType AccountType `json:"accountType"`
}

type Product struct {
	ProductID        int64       `json:"productId"`
	Name             string      `json:"name"`
	Price            float64     `json:"price"`
	CategoryID       int64       `json:"categoryId"`
	Description      string      `json:"description"`
	Color            string      `json:"color"`
	Stock            int32       `json:"stock"`
	Featured         bool        `json:"featured"`
	ImageURL         string      `json:"imageUrl"`
	BuyerRequirement AccountType `json:"buyerRequirement,omitempty"`
}

// CartItem is a product in a shopping cart together with the quantity and any
// discount applied. The embedded product is the catalog row joined at read
// time, not a live reference.
type CartItem struct {
	Product         Product `json:"product"`
	Quantity        int32   `json:"quantity"`
	DiscountPercent float64 `json:"discountPercent"`
}

// LineTotal is price x quantity x (1 - discount/100), rounded to the cent.
func (i CartItem) LineTotal() float64 {
	total := i.Product.Price * float64(i.Quantity) * (1 - i.DiscountPercent/100)
	return roundCents(total)
}

// Cart holds a user's shopping cart keyed by product id. A user has at most
// one cart row per product.
type Cart struct {
	Items map[int64]CartItem `json:"items"`
}

func NewCart() Cart {
	return Cart{Items: make(map[int64]CartItem)}
}

func (c *Cart) Add(item CartItem) {
	if c.Items == nil {
		c.Items = make(map[int64]CartItem)
	}
	c.Items[item.Product.ProductID] = item
}

// Total sums the line totals of all items, rounded to the cent.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.LineTotal()
	}
	return roundCents(total)
}

type Order struct {
	OrderID        int64           `json:"orderId"`
	UserID         int64           `json:"userId"`
	Date           time.Time       `json:"date"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	Zip            string          `json:"zip"`
	ShippingAmount float64         `json:"shippingAmount"`
	OrderTotal     float64         `json:"orderTotal"`
	LineItems      []OrderLineItem `json:"lineItems,omitempty"`
}

// OrderLineItem records one purchased product. SalesPrice is the product
// price at the time of purchase; later catalog changes do not affect it.
type OrderLineItem struct {
	OrderLineItemID int64   `json:"orderLineItemId"`
	OrderID         int64   `json:"orderId"`
	ProductID       int64   `json:"productId"`
	SalesPrice      float64 `json:"salesPrice"`
	Quantity        int32   `json:"quantity"`
	Discount        float64 `json:"discount"`
}

type Job struct {
	JobID          int64     `json:"jobId"`
	Title          string    `json:"title"`
	Department     string    `json:"department"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employmentType"`
	Description    string    `json:"description"`
	PostedDate     time.Time `json:"postedDate"`
	Open           bool      `json:"open"`
}

type JobApplication struct {
	ApplicationID int64     `json:"applicationId"`
	JobID         int64     `json:"jobId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ResumeURL     string    `json:"resumeUrl"`
	CoverLetter   string    `json:"coverLetter"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

type SalesInquiry struct {
	InquiryID       int64     `json:"inquiryId"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Company         string    `json:"company"`
	Phone           string    `json:"phone"`
	Message         string    `json:"message"`
	ProductInterest string    `json:"productInterest"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
