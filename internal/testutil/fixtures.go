package testutil

// Sample JSON responses for feed testing

// SampleBoardResponse is a minimal valid departure board response
const SampleBoardResponse = `{
	"340000022GEO": {
		"description": "George Street B4",
		"calls": [
			{
				"route_code": "S1",
				"destination_name": "Carterton",
				"display_time": "5 min"
			},
			{
				"route_code": "S2",
				"destination_name": "Witney",
				"display_time": "21 min"
			},
			{
				"route_code": "8",
				"destination_name": "Barton",
				"display_time": "2 min"
			}
		]
	}
}`

// SampleBoardResponseShort has fewer calls than the board shows
const SampleBoardResponseShort = `{
	"340000022GEO": {
		"description": "George Street B4",
		"calls": [
			{
				"route_code": "X3",
				"destination_name": "Abingdon",
				"display_time": "17:45"
			}
		]
	}
}`

// SampleBoardResponseOtherStop keys the board by an unexpected stop code
const SampleBoardResponseOtherStop = `{
	"340000001ABC": {
		"description": "High Street C2",
		"calls": [
			{
				"route_code": "400",
				"destination_name": "Thornhill",
				"display_time": "3 min"
			}
		]
	}
}`

// SampleBoardResponseEmpty contains no stop entries at all
const SampleBoardResponseEmpty = `{}`
