package app

import "thirteen/internal/domain"

// MinPlayersToStartGame defines the minimum number of seats required to start a game.
const MinPlayersToStartGame = 2

// MaxPlayersPerGame is bounded by what one deck can deal.
const MaxPlayersPerGame = domain.MaxPlayers

// noSeat marks an empty pile owner.
const noSeat = -1
