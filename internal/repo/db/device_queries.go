package db

const insertDeviceLog = `
INSERT INTO device_logs
	(session_identifier, platform, browser, ip_address, country, city,
	device_type, user_id, first_activity, last_activity, revoked)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, FALSE)
RETURNING id
`

const deviceLogExists = `
SELECT EXISTS (
	SELECT 1
	FROM device_logs
	WHERE session_identifier = $1 AND user_id = $2
)
`

// currentDevices keeps, per (user_id, session_identifier, platform, browser)
// group of non-revoked rows, the row no sibling beats on
// (last_activity, id).
const currentDevices = `
SELECT
	d.id,
	d.session_identifier,
	d.platform,
	d.browser,
	d.ip_address,
	d.country,
	d.city,
	d.device_type,
	d.user_id,
	d.first_activity,
	d.last_activity,
	d.revoked
FROM device_logs d
WHERE NOT EXISTS (
	SELECT 1
	FROM device_logs d2
	WHERE
		d2.user_id = d.user_id
		AND d2.session_identifier = d.session_identifier
		AND d2.platform = d.platform
		AND d2.browser = d.browser
		AND (
			d2.last_activity > d.last_activity
			OR (d2.last_activity = d.last_activity AND d2.id > d.id)
		)
		AND d2.revoked = FALSE
)
AND d.revoked = FALSE
`

const getDeviceLog = currentDevices + `
AND d.id = $1
`

const linkedIPs = `
SELECT DISTINCT ip_address
FROM device_logs
WHERE session_identifier = $1 AND platform = $2 AND browser = $3
`

const activeIdentifiersForUser = `
SELECT DISTINCT session_identifier
FROM device_logs
WHERE user_id = $1 AND revoked = FALSE
`

const identifiersForUser = `
SELECT DISTINCT session_identifier
FROM device_logs
WHERE user_id = $1
`

const revokeByIdentifiers = `
UPDATE device_logs
SET revoked = TRUE
WHERE session_identifier IN (?)
`

// purgeSuperseded drops every row with a strictly newer sibling in its
// (session_identifier, platform, browser, ip_address) group. The newest row
// of each group survives regardless of age.
const purgeSuperseded = `
DELETE FROM device_logs l1
WHERE EXISTS (
	SELECT 1
	FROM device_logs l2
	WHERE
		l1.session_identifier = l2.session_identifier
		AND l1.platform = l2.platform
		AND l1.browser = l2.browser
		AND l1.ip_address = l2.ip_address
		AND l1.last_activity < l2.last_activity
)
`

// purgeOlderThan is the coarser retention sweep. It still never touches the
// newest row of a group, only stale superseded ones.
const purgeOlderThan = `
DELETE FROM device_logs l1
WHERE l1.last_activity < $1
AND EXISTS (
	SELECT 1
	FROM device_logs l2
	WHERE
		l1.session_identifier = l2.session_identifier
		AND l1.platform = l2.platform
		AND l1.browser = l2.browser
		AND l1.ip_address = l2.ip_address
		AND l1.last_activity < l2.last_activity
)
`

const deleteDeviceLog = `
DELETE FROM device_logs
WHERE id = $1
`

const deleteLogsForUser = `
DELETE FROM device_logs
WHERE user_id = $1
`
