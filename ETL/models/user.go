package models

import "encoding/json"

// Coordinates представляет географические координаты адреса
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Address представляет почтовый адрес пользователя или компании
type Address struct {
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	StateCode   string      `json:"stateCode"`
	PostalCode  string      `json:"postalCode"`
	Coordinates Coordinates `json:"coordinates"`
	Country     string      `json:"country"`
}

// Hair описывает волосы пользователя
type Hair struct {
	Color string `json:"color"`
	Type  string `json:"type"`
}

// Bank содержит банковские реквизиты (в агрегации не используются)
type Bank struct {
	CardExpire string `json:"cardExpire"`
	CardNumber string `json:"cardNumber"`
	CardType   string `json:"cardType"`
	Currency   string `json:"currency"`
	IBAN       string `json:"iban"`
}

// Company описывает место работы пользователя
type Company struct {
	Department string  `json:"department"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Address    Address `json:"address"`
}

// Crypto содержит данные криптокошелька (в агрегации не используются)
type Crypto struct {
	Coin    string `json:"coin"`
	Wallet  string `json:"wallet"`
	Network string `json:"network"`
}

// User представляет пользователя, полученного из внешнего API
type User struct {
	ID         int     `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	MaidenName string  `json:"maidenName"`
	Age        int     `json:"age"`
	Gender     string  `json:"gender"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	BirthDate  string  `json:"birthDate"`
	Image      string  `json:"image"`
	BloodGroup string  `json:"bloodGroup"`
	Height     float64 `json:"height"`
	Weight     float64 `json:"weight"`
	EyeColor   string  `json:"eyeColor"`
	Hair       Hair    `json:"hair"`
	IP         string  `json:"ip"`
	Address    Address `json:"address"`
	MacAddress string  `json:"macAddress"`
	University string  `json:"university"`
	Bank       Bank    `json:"bank"`
	Company    Company `json:"company"`
	EIN        string  `json:"ein"`
	SSN        string  `json:"ssn"`
	UserAgent  string  `json:"userAgent"`
	Crypto     Crypto  `json:"crypto"`
	Role       string  `json:"role"`
}

// FullName возвращает ключ для карты адресов: имя и фамилия без разделителя
func (u User) FullName() string {
	return u.FirstName + u.LastName
}

// UsersResponse - тело ответа внешнего API со списком пользователей.
// Записи разбираются по одной, чтобы проверить наличие обязательных полей.
type UsersResponse struct {
	Users *[]json.RawMessage `json:"users"`
}
