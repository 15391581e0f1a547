package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBudget(t *testing.T) {
	assert.Equal(t, BudgetLow, ParseBudget("low"))
	assert.Equal(t, BudgetMedium, ParseBudget("medium"))
	assert.Equal(t, BudgetHigh, ParseBudget("high"))
	assert.Equal(t, BudgetUnknown, ParseBudget(""))
	assert.Equal(t, BudgetUnknown, ParseBudget("LOW"))
	assert.Equal(t, BudgetUnknown, ParseBudget("luxury"))
}

func TestParsePartyType(t *testing.T) {
	assert.Equal(t, PartySolo, ParsePartyType("solo"))
	assert.Equal(t, PartyCouple, ParsePartyType("couple"))
	assert.Equal(t, PartyFamily, ParsePartyType("family"))
	assert.Equal(t, PartyFriends, ParsePartyType("friends"))
	assert.Equal(t, PartyOther, ParsePartyType(""))
	assert.Equal(t, PartyOther, ParsePartyType("group"))
}
