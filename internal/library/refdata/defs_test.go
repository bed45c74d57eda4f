package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
)

func Test_ErrorMessagesUseCamelCaseKinds(t *testing.T) {
	assert.Equal(t, "BookStatus not found", apierr.NotFound(bookStatusDef.Kind).Message)
	assert.Equal(t, "BookCollection not found", apierr.NotFound(bookCollectionDef.Kind).Message)
	assert.Equal(t, "LoanStatus not found", apierr.NotFound(loanStatusDef.Kind).Message)
	assert.Equal(t, "PlanStatus not found", apierr.NotFound(planStatusDef.Kind).Message)
	assert.Equal(t, "FeeType not found", apierr.NotFound(feeTypeDef.Kind).Message)
}
