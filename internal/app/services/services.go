package services

// Services defined in this package:
// - AlumniService: identity verification, alumni creation, tracer status
// - TracerService: the transactional survey submission workflow
// - ReferenceService: read-only reference data lookups
// - StatisticService: summary and per-question aggregate reporting
// - RosterService: the full alumni roster report
// - AuthService: admin credential check and token issuance
