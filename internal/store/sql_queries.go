package store

// Query texts are shared between the PostgreSQL and SQLite backends: both
// drivers accept $N ordinal placeholders and RETURNING clauses, so the
// dialect split lives entirely in the migrations.
const (
	createUser = `INSERT INTO users (username, email, password_hash, created_at)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, email, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	updateUserPassword = `UPDATE users
    SET password_hash = $1
    WHERE user_id = $2;`

	getTherapist = `SELECT therapist_id, name, photo_url, specialties, bio, experience_years,
        education, languages, address, rating, review_count,
        accepting_new_patients, average_session_length
    FROM therapists
    WHERE therapist_id = $1;`

	listTherapistSlots = `SELECT slot_id, slot_date, slot_time, is_available
    FROM time_slots
    WHERE therapist_id = $1
    ORDER BY slot_date, slot_time;`

	createReview = `INSERT INTO reviews (therapist_id, patient_name, rating, comment, review_date)
    VALUES ($1, $2, $3, $4, $5);`

	createAppointment = `INSERT INTO appointments (user_id, therapist_id, appointment_date, appointment_time,
        appointment_type, notes, insurance_provider, insurance_member_id, status, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING appointment_id;`

	listAppointmentsByUser = `SELECT appointment_id, user_id, therapist_id, appointment_date, appointment_time,
        appointment_type, notes, status, created_at
    FROM appointments
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	createMessage = `INSERT INTO messages (sender_id, recipient_id, recipient_type, subject, content, created_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING message_id;`

	listAnnotationsByUser = `SELECT annotation_id, user_id, image, detections, image_size, model_used,
        created_at, status, confidence_threshold, processing_time_ms, device
    FROM annotations
    WHERE user_id = $1
    ORDER BY created_at DESC;`
)
