package ynab

// Wire types mirror the API's JSON shapes exactly: snake_case keys,
// integer milliunit amounts, and explicit nulls for optional fields. They
// never escape this package; every service converts them to the exported
// decimal types before returning.

type wireBudget struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastModifiedOn string          `json:"last_modified_on"`
	CurrencyFormat *CurrencyFormat `json:"currency_format"`
}

type budgetsData struct {
	Budgets []*wireBudget `json:"budgets"`
}

func (w *wireBudget) toBudget() *Budget {
	return &Budget{
		ID:             w.ID,
		Name:           w.Name,
		LastModifiedOn: w.LastModifiedOn,
		CurrencyFormat: w.CurrencyFormat,
	}
}

type wireAccount struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	OnBudget bool   `json:"on_budget"`
	Closed   bool   `json:"closed"`
	Balance  int64  `json:"balance"`
	Deleted  bool   `json:"deleted"`
}

type accountsData struct {
	Accounts []*wireAccount `json:"accounts"`
}

func (w *wireAccount) toAccount() *Account {
	return &Account{
		ID:       w.ID,
		Name:     w.Name,
		Type:     w.Type,
		OnBudget: w.OnBudget,
		Closed:   w.Closed,
		Balance:  FromMilliunits(w.Balance),
	}
}

type wireCategory struct {
	ID                     string  `json:"id"`
	CategoryGroupID        string  `json:"category_group_id"`
	Name                   string  `json:"name"`
	Hidden                 bool    `json:"hidden"`
	Note                   *string `json:"note"`
	Budgeted               int64   `json:"budgeted"`
	Activity               int64   `json:"activity"`
	Balance                int64   `json:"balance"`
	GoalType               *string `json:"goal_type"`
	GoalTarget             *int64  `json:"goal_target"`
	GoalTargetMonth        *string `json:"goal_target_month"`
	GoalPercentageComplete *int    `json:"goal_percentage_complete"`
	Deleted                bool    `json:"deleted"`
}

type wireCategoryGroup struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Hidden     bool            `json:"hidden"`
	Deleted    bool            `json:"deleted"`
	Categories []*wireCategory `json:"categories"`
}

type categoryGroupsData struct {
	CategoryGroups []*wireCategoryGroup `json:"category_groups"`
}

type categoryData struct {
	Category *wireCategory `json:"category"`
}

func (w *wireCategory) toCategory() *Category {
	c := &Category{
		ID:                     w.ID,
		CategoryGroupID:        w.CategoryGroupID,
		Name:                   w.Name,
		Hidden:                 w.Hidden,
		Note:                   strVal(w.Note),
		Budgeted:               FromMilliunits(w.Budgeted),
		Activity:               FromMilliunits(w.Activity),
		Balance:                FromMilliunits(w.Balance),
		GoalType:               strVal(w.GoalType),
		GoalTargetMonth:        strVal(w.GoalTargetMonth),
		GoalPercentageComplete: w.GoalPercentageComplete,
		Deleted:                w.Deleted,
	}
	if w.GoalTarget != nil {
		target := FromMilliunits(*w.GoalTarget)
		c.GoalTarget = &target
	}
	return c
}

type wireMonth struct {
	Month        string          `json:"month"`
	Note         *string         `json:"note"`
	Income       int64           `json:"income"`
	Budgeted     int64           `json:"budgeted"`
	Activity     int64           `json:"activity"`
	ToBeBudgeted int64           `json:"to_be_budgeted"`
	Categories   []*wireCategory `json:"categories"`
}

type monthData struct {
	Month *wireMonth `json:"month"`
}

type wireTransaction struct {
	ID                string  `json:"id"`
	Date              string  `json:"date"`
	Amount            int64   `json:"amount"`
	Memo              *string `json:"memo"`
	Cleared           string  `json:"cleared"`
	Approved          bool    `json:"approved"`
	FlagColor         *string `json:"flag_color"`
	AccountID         string  `json:"account_id"`
	AccountName       string  `json:"account_name"`
	PayeeID           *string `json:"payee_id"`
	PayeeName         *string `json:"payee_name"`
	CategoryID        *string `json:"category_id"`
	CategoryName      *string `json:"category_name"`
	TransferAccountID *string `json:"transfer_account_id"`
	Deleted           bool    `json:"deleted"`
}

type transactionsData struct {
	Transactions []*wireTransaction `json:"transactions"`
}

type transactionData struct {
	Transaction *wireTransaction `json:"transaction"`
}

func (w *wireTransaction) toTransaction() *Transaction {
	date, _ := ParseDate(w.Date)
	return &Transaction{
		ID:                w.ID,
		Date:              date,
		Amount:            FromMilliunits(w.Amount),
		Memo:              strVal(w.Memo),
		Cleared:           ClearedStatus(w.Cleared),
		Approved:          w.Approved,
		FlagColor:         FlagColor(strVal(w.FlagColor)),
		AccountID:         w.AccountID,
		AccountName:       w.AccountName,
		PayeeID:           strVal(w.PayeeID),
		PayeeName:         strVal(w.PayeeName),
		CategoryID:        strVal(w.CategoryID),
		CategoryName:      strVal(w.CategoryName),
		TransferAccountID: strVal(w.TransferAccountID),
		Deleted:           w.Deleted,
	}
}

type wireScheduledTransaction struct {
	ID           string  `json:"id"`
	DateFirst    string  `json:"date_first"`
	DateNext     string  `json:"date_next"`
	Frequency    string  `json:"frequency"`
	Amount       int64   `json:"amount"`
	Memo         *string `json:"memo"`
	FlagColor    *string `json:"flag_color"`
	AccountID    string  `json:"account_id"`
	AccountName  string  `json:"account_name"`
	PayeeName    *string `json:"payee_name"`
	CategoryID   *string `json:"category_id"`
	CategoryName *string `json:"category_name"`
	Deleted      bool    `json:"deleted"`
}

type scheduledTransactionsData struct {
	ScheduledTransactions []*wireScheduledTransaction `json:"scheduled_transactions"`
}

type scheduledTransactionData struct {
	ScheduledTransaction *wireScheduledTransaction `json:"scheduled_transaction"`
}

func (w *wireScheduledTransaction) toScheduledTransaction() *ScheduledTransaction {
	dateFirst, _ := ParseDate(w.DateFirst)
	dateNext, _ := ParseDate(w.DateNext)
	return &ScheduledTransaction{
		ID:           w.ID,
		DateFirst:    dateFirst,
		DateNext:     dateNext,
		Frequency:    Frequency(w.Frequency),
		Amount:       FromMilliunits(w.Amount),
		Memo:         strVal(w.Memo),
		FlagColor:    FlagColor(strVal(w.FlagColor)),
		AccountID:    w.AccountID,
		AccountName:  w.AccountName,
		PayeeName:    strVal(w.PayeeName),
		CategoryID:   strVal(w.CategoryID),
		CategoryName: strVal(w.CategoryName),
		Deleted:      w.Deleted,
	}
}

type userData struct {
	User *User `json:"user"`
}

// saveTransaction is the write shape shared by transaction create and
// update. Optional fields are omitted when nil so the API keeps (or
// defaults) their values.
type saveTransaction struct {
	AccountID  string  `json:"account_id"`
	Date       string  `json:"date"`
	Amount     int64   `json:"amount"`
	PayeeName  *string `json:"payee_name,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	Memo       *string `json:"memo,omitempty"`
	Cleared    string  `json:"cleared,omitempty"`
	Approved   bool    `json:"approved"`
}

type saveTransactionRequest struct {
	Transaction *saveTransaction `json:"transaction"`
}

type saveMonthCategory struct {
	Budgeted int64 `json:"budgeted"`
}

type saveMonthCategoryRequest struct {
	Category *saveMonthCategory `json:"category"`
}

type saveScheduledTransaction struct {
	AccountID  string  `json:"account_id"`
	Date       string  `json:"date"`
	Amount     int64   `json:"amount"`
	Frequency  string  `json:"frequency,omitempty"`
	PayeeName  *string `json:"payee_name,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	Memo       *string `json:"memo,omitempty"`
	FlagColor  *string `json:"flag_color,omitempty"`
}

type saveScheduledTransactionRequest struct {
	ScheduledTransaction *saveScheduledTransaction `json:"scheduled_transaction"`
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
