package types

// Client -> Server (one JSON event per frame)
// create_room:
//   mode: "PVP_PAINT" | "PVP_DRAW" (default PVP_PAINT)
//
// join_room:
//   code: string
//
// player_move:
//   room: string (ignored; the connection's binding wins)
//   position: opaque
//   rotation: opaque
//
// player_paint:
//   room: string
//   position: opaque
//   color: opaque
//
// round_finished (aliases: start_round, next_round):
//   room: string
//
// guess_word:
//   room: string
//   guess: string
//   correct: boolean // trusted from the client, never verified server-side
//
// end_match:
//   room: string

// Server -> Client
// room_created:
//   code: string
//   mode: string
//
// game_start:
//   mode: string
//   round: number        // PVP_DRAW only
//   drawerIsHost: bool   // PVP_DRAW only
//   word: string         // drawer's copy only, absent for the guesser
//
// round_changed:
//   round: number
//   drawerIsHost: bool
//   word: string // drawer only
//
// round_ended:
//   guesserWon: bool
//   hostScore: number
//   joinScore: number
//
// match_ended:
//   hostScore: number
//   joinScore: number
//
// opponent_move / opponent_paint: relayed payload, fields unchanged
//
// opponent_disconnected: {}
//
// error:
//   msg: string
