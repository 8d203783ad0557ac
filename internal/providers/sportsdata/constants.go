package sportsdata

import "time"

const providerName = "sportsdata"

const defaultBaseURL = "https://api.sportsdata.io/v3/nba/scores/json/GamesByDate"

// defaultTimeout bounds a single fetch; the pipeline performs no retries.
const defaultTimeout = 15 * time.Second
